package interfaces

import (
	"context"

	"efectivio/internal/domain/entities"
)

type IMailer interface {
	Send(ctx context.Context, msg entities.EmailMessage) error
}
