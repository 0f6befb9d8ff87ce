package mail

import (
	"io"
	"mime"
	netmail "net/mail"
	"strings"
	"testing"

	"efectivio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_PlainText(t *testing.T) {
	raw, err := buildMessage("billing@example.com", entities.EmailMessage{
		To:       "client@example.com",
		Subject:  "Invitación al portal",
		TextBody: "hello",
	})
	require.NoError(t, err)

	msg, err := netmail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", msg.Header.Get("To"))
	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Invitación al portal", subject)

	body, err := io.ReadAll(msg.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestBuildMessage_Alternative(t *testing.T) {
	raw, err := buildMessage("billing@example.com", entities.EmailMessage{
		To:       "client@example.com",
		Subject:  "Invite",
		TextBody: "plain part",
		HTMLBody: "<p>html part</p>",
	})
	require.NoError(t, err)

	msg, err := netmail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(msg.Header.Get("Content-Type"), "multipart/alternative"))

	body, err := io.ReadAll(msg.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "plain part")
	assert.Contains(t, string(body), "<p>html part</p>")
}
