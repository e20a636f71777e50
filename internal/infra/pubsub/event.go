package pubsub

import (
	"strconv"

	"registry/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.AccountEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"user_id":    strconv.FormatInt(event.UserID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
