package sqsconsumer

import "github.com/aws/aws-sdk-go/service/sqs"

//go:generate mockgen -destination=mock/mock_sqsapi.go -package=mock github.com/teamvio/sqs-consumer SQSAPI

// SQSAPI is the part of the AWS SQS API which is used by the sqsconsumer package
type SQSAPI interface {
	ChangeMessageVisibility(*sqs.ChangeMessageVisibilityInput) (*sqs.ChangeMessageVisibilityOutput, error)
	CreateQueue(*sqs.CreateQueueInput) (*sqs.CreateQueueOutput, error)
	DeleteMessage(*sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	GetQueueUrl(*sqs.GetQueueUrlInput) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(*sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
}
