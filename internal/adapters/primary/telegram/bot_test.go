package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestConsume_UnexpectedChannelCloseIsLogged(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	b := &Bot{sem: make(chan struct{}, 1)}
	updates := make(chan tgbotapi.Update)
	close(updates)

	err := b.consume(context.Background(), updates)
	assert.NoError(t, err)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "telegram updates channel closed unexpectedly, bot is no longer receiving messages" {
			warned = true
		}
	}
	assert.True(t, warned)
}
