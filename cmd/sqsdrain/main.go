// sqsdrain reads messages until interrupted off of an SQS queue and writes them to a file.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	sqsconsumer "github.com/teamvio/sqs-consumer"
	"github.com/teamvio/sqs-consumer/middleware"
	"github.com/urfave/cli/v2"
	"golang.org/x/net/context"
)

const (
	metricsPrefix     = "sqsdrain"
	receiveErrorDelay = 5 * time.Second
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	app := &cli.App{
		Name:  "sqsdrain",
		Usage: "Read messages off an SQS queue until interrupted and write their bodies to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "queue",
				Usage:    "Queue name to drain",
				Required: true,
				EnvVars:  []string{"SQS_QUEUE"},
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "File for output (default: STDOUT)",
			},
			&cli.StringFlag{
				Name:    "region",
				Usage:   "AWS region of the queue",
				Value:   "eu-west-1",
				EnvVars: []string{"AWS_REGION"},
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Messages requested per receive (1-10)",
				Value: 10,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("sqsdrain failed")
	}
}

func run(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	// write to a file if specified, or standard out
	var output io.WriteCloser = os.Stdout
	if name := c.String("out"); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		output = f
	}
	defer output.Close()

	queueName := c.String("queue")
	s, err := sqsconsumer.SQSServiceForQueue(queueName, sqsconsumer.OptAWSRegion(c.String("region")))
	if err != nil {
		return fmt.Errorf("setting up queue %q: %w", queueName, err)
	}

	w := &worker{Output: output}
	consumer, err := s.NewConsumer(w.handler(s, metricsPrefix),
		sqsconsumer.WithBatchSize(int64(c.Int("batch-size"))),
		sqsconsumer.WithReceiveErrorDelay(receiveErrorDelay),
		sqsconsumer.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}

	term := make(chan os.Signal, 1)
	signal.Notify(term, os.Interrupt, syscall.SIGTERM)

	drained := w.Run(consumer, term)
	log.Info().Int64("messages", drained).Msg("Shutdown complete")
	return nil
}

// worker writes every message body it handles as a line of Output.
type worker struct {
	mu     sync.Mutex
	Output io.Writer
}

// Run drives consumer until a value arrives on term, then waits for the poll loop to halt and returns the
// number of messages drained.
func (w *worker) Run(consumer *sqsconsumer.Consumer, term <-chan os.Signal) int64 {
	var drained int64
	consumer.OnMessageProcessed(func(*sqs.Message) {
		atomic.AddInt64(&drained, 1)
	})

	stopped := make(chan struct{})
	consumer.OnStopped(func() { close(stopped) })

	log.Info().Msg("Starting consumer")
	consumer.Start()

	<-term
	log.Info().Msg("Starting graceful shutdown")
	consumer.Stop()
	<-stopped

	return atomic.LoadInt64(&drained)
}

// handler is HandleMessage wrapped in the default middleware stack, with metrics published under prefix.
func (w *worker) handler(s *sqsconsumer.SQSService, prefix string) sqsconsumer.MessageHandlerFunc {
	return middleware.ApplyDecoratorsToHandler(w.HandleMessage, middleware.DefaultStack(s, prefix)...)
}

func (w *worker) HandleMessage(_ context.Context, msg *sqs.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := fmt.Fprintln(w.Output, aws.StringValue(msg.Body))
	return err
}
