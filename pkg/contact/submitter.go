package contact

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kheobs/labsite/pkg/model"
)

// 提交后端
const (
	BackendLog   = "log"
	BackendMySQL = "mysql"
	BackendSQS   = "sqs"
)

// Submitter 联系表单提交后端
type Submitter interface {
	Submit(ctx context.Context, msg model.ContactMessage) error
}

// LogSubmitter 仅写日志
type LogSubmitter struct {
	Logger *logrus.Logger
}

// Submit ...
func (s LogSubmitter) Submit(_ context.Context, msg model.ContactMessage) error {
	s.Logger.WithFields(logrus.Fields{
		"name":         msg.FirstName + " " + msg.LastName,
		"email":        msg.Email,
		"organization": msg.Organization,
		"reason":       msg.Reason,
		"clientIP":     msg.ClientIP,
	}).Info("contact message received")
	return nil
}

// DBSubmitter 写入数据库
type DBSubmitter struct {
	DB *gorm.DB
}

// Submit ...
func (s DBSubmitter) Submit(ctx context.Context, msg model.ContactMessage) error {
	return s.DB.WithContext(ctx).Create(&msg).Error
}

// SQSSubmitter 投递到 SQS 队列，由下游服务处理（如发送邮件、写入 CRM）
type SQSSubmitter struct {
	client   sqsiface.SQSAPI
	queueURL string
}

// NewSQSSubmitter accessKey 为空时使用默认凭据链（环境变量、实例角色等）
func NewSQSSubmitter(region, accessKey, secretKey, queueURL string) (*SQSSubmitter, error) {
	if queueURL == "" {
		return nil, errors.New("sqs queue url is required")
	}
	cfg := &aws.Config{Region: aws.String(region)}
	if accessKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create aws session")
	}
	return &SQSSubmitter{client: sqs.New(sess), queueURL: queueURL}, nil
}

// NewSQSSubmitterWithClient ...
func NewSQSSubmitterWithClient(client sqsiface.SQSAPI, queueURL string) *SQSSubmitter {
	return &SQSSubmitter{client: client, queueURL: queueURL}
}

// Submit ...
func (s *SQSSubmitter) Submit(ctx context.Context, msg model.ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode contact message")
	}
	_, err = s.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]*sqs.MessageAttributeValue{
			"reason": {DataType: aws.String("String"), StringValue: aws.String(msg.Reason)},
		},
	})
	return errors.Wrap(err, "send contact message to sqs")
}
