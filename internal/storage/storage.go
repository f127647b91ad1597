package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	relay_errors "relay-chat/pkg/errors"
)

// Object is an upload ready to be stored. Data is the base64 body as sent by clients.
type Object struct {
	Key         string
	ContentType string
	Data        string
}

// ObjectStore persists uploads and reports the public URL they are served from.
type ObjectStore interface {
	Put(ctx context.Context, obj Object) (string, error)
}

func publicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}

// DecodeBody decodes a base64 payload. A data URL prefix ("data:...;base64,") is tolerated.
func DecodeBody(data string) ([]byte, error) {
	if i := strings.Index(data, ";base64,"); i >= 0 && strings.HasPrefix(data, "data:") {
		data = data[i+len(";base64,"):]
	}
	body, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: file_data is not valid base64", relay_errors.ErrInvalidInput)
	}
	return body, nil
}
