package sqsconsumer

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

// SQSService links an SQS client with a queue URL.
type SQSService struct {
	Svc SQSAPI
	URL *string
}

// NewSQSService gets or creates the named queue using svc. Takes SQS type as an argument so the library may be mocked and tested locally.
func NewSQSService(queueName string, svc SQSAPI) (*SQSService, error) {
	url, err := SetupQueue(svc, queueName)
	if err != nil {
		return nil, err
	}

	return &SQSService{Svc: svc, URL: url}, nil
}

// SQSServiceForQueue creates an AWS SQS client configured with the given options and gets or creates a queue with the given name.
func SQSServiceForQueue(queueName string, opts ...AWSConfigOption) (*SQSService, error) {
	conf := &aws.Config{Region: aws.String(defaultRegion)}
	for _, o := range opts {
		o(conf)
	}

	sess, err := session.NewSession(conf)
	if err != nil {
		return nil, err
	}
	return NewSQSService(queueName, sqs.New(sess))
}

// NewConsumer creates a Consumer bound to the service's client and queue.
func (s *SQSService) NewConsumer(handler MessageHandlerFunc, opts ...Option) (*Consumer, error) {
	opts = append([]Option{WithSQS(s.Svc)}, opts...)
	return NewConsumer(aws.StringValue(s.URL), handler, opts...)
}

// AWSConfigOption modifies the aws.Config used by SQSServiceForQueue.
type AWSConfigOption func(*aws.Config)

// OptAWSRegion sets the region of the SQS client.
func OptAWSRegion(region string) AWSConfigOption {
	return func(c *aws.Config) {
		c.Region = aws.String(region)
	}
}

// SetupQueue creates the queue to listen on and returns the URL.
func SetupQueue(svc SQSAPI, name string) (*string, error) {
	// if the queue already exists just get the url
	getResp, err := svc.GetQueueUrl(&sqs.GetQueueUrlInput{
		QueueName: aws.String(name),
	})
	if err == nil {
		return getResp.QueueUrl, nil
	}

	// fallback to creating the queue
	createResp, err := svc.CreateQueue(&sqs.CreateQueueInput{
		QueueName: aws.String(name),
		Attributes: map[string]*string{
			"MessageRetentionPeriod":        aws.String("1209600"), // 14 days
			"ReceiveMessageWaitTimeSeconds": aws.String("20"),
		},
	})
	if err != nil {
		return nil, err
	}

	return createResp.QueueUrl, nil
}
