package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"gps-coord-bot/internal/config"
	"gps-coord-bot/internal/core/domain"
	"gps-coord-bot/internal/core/ports/output"
	"gps-coord-bot/internal/core/services"
)

// maxFileBytes caps photo downloads; Telegram bot API files top out at
// 20 MB anyway.
const maxFileBytes = 20 << 20

// Bot is the long-polling Telegram adapter. Each update is handled on
// its own goroutine; OCR runs are bounded by a semaphore.
type Bot struct {
	api         *tgbotapi.BotAPI
	svc         *services.ExtractionService
	files       *http.Client
	pollTimeout int
	sem         chan struct{}
	wg          sync.WaitGroup
}

func New(cfg *config.TelegramConfig, ocrCfg *config.OCRConfig, svc *services.ExtractionService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot api: %w", err)
	}
	api.Debug = cfg.Debug

	workers := ocrCfg.MaxConcurrent
	if workers <= 0 {
		workers = 1
	}

	return &Bot{
		api:         api,
		svc:         svc,
		files:       &http.Client{Timeout: 60 * time.Second},
		pollTimeout: cfg.PollTimeout,
		sem:         make(chan struct{}, workers),
	}, nil
}

// Run polls for updates until ctx is cancelled, then drains in-flight
// handlers before returning.
func (b *Bot) Run(ctx context.Context) error {
	log.WithField("username", b.api.Self.UserName).Info("telegram bot polling for updates")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	return b.consume(ctx, b.api.GetUpdatesChan(u))
}

func (b *Bot) consume(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.wg.Wait()
			log.Info("telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				b.wg.Wait()
				// Closure without cancellation means polling died
				// underneath us while the process keeps running.
				if ctx.Err() == nil {
					log.Warn("telegram updates channel closed unexpectedly, bot is no longer receiving messages")
				}
				return nil
			}
			if update.Message == nil {
				continue
			}
			msg := update.Message
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.handleMessage(ctx, msg)
			}()
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand():
		b.handleCommand(ctx, msg)
	case len(msg.Photo) > 0 || isImageDocument(msg.Document):
		b.handlePhoto(ctx, msg)
	case msg.Text != "":
		b.reply(msg.Chat.ID, msg.MessageID, textPromptMessage)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, msg.MessageID, welcomeMessage)
	case "help":
		b.reply(msg.Chat.ID, msg.MessageID, helpMessage)
	case "stats":
		b.handleStats(ctx, msg)
	default:
		b.reply(msg.Chat.ID, msg.MessageID, textPromptMessage)
	}
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	stats, err := b.svc.Stats(ctx, ports.StatsFilter{ChatID: msg.Chat.ID})
	if err != nil {
		if errors.Is(err, domain.ErrHistoryDisabled) {
			b.reply(msg.Chat.ID, msg.MessageID, statsDisabledMessage)
			return
		}
		log.WithError(err).Error("load chat stats failed")
		b.reply(msg.Chat.ID, msg.MessageID, internalErrorMessage)
		return
	}
	b.reply(msg.Chat.ID, msg.MessageID, statsMessage(stats))
}

func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	b.sem <- struct{}{}
	defer func() { <-b.sem }()

	processing, err := b.reply(msg.Chat.ID, msg.MessageID, processingMessage)
	if err != nil {
		log.WithError(err).Error("send processing message failed")
		return
	}

	fileID, fileName := pickImageFile(msg)

	data, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.WithError(err).WithField("file_id", fileID).Error("download telegram file failed")
		b.edit(msg.Chat.ID, processing.MessageID, downloadErrorMessage)
		return
	}

	rec, err := b.svc.ProcessImage(ctx, services.ExtractionInput{
		Source:    domain.SourceTelegram,
		ChatID:    msg.Chat.ID,
		UserID:    senderID(msg),
		MessageID: int64(msg.MessageID),
		FileName:  fileName,
		Data:      data,
	})
	if err != nil && rec == nil {
		log.WithError(err).Error("process image failed")
	}

	b.edit(msg.Chat.ID, processing.MessageID, resultMessage(rec, err))
}

// pickImageFile prefers the largest photo rendition; Telegram orders
// PhotoSize ascending.
func pickImageFile(msg *tgbotapi.Message) (fileID, fileName string) {
	if len(msg.Photo) > 0 {
		ps := msg.Photo[len(msg.Photo)-1]
		return ps.FileID, fmt.Sprintf("photo_%s.jpg", ps.FileUniqueID)
	}
	name := msg.Document.FileName
	if name == "" {
		name = fmt.Sprintf("document_%s", msg.Document.FileUniqueID)
	}
	return msg.Document.FileID, name
}

func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.files.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileBytes))
	if err != nil {
		return nil, fmt.Errorf("read file body: %w", err)
	}
	return data, nil
}

func (b *Bot) reply(chatID int64, replyTo int, text string) (tgbotapi.Message, error) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	m.ReplyToMessageID = replyTo
	sent, err := b.api.Send(m)
	if err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("send message failed")
	}
	return sent, err
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	e := tgbotapi.NewEditMessageText(chatID, messageID, text)
	e.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(e); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("edit message failed")
	}
}

func isImageDocument(doc *tgbotapi.Document) bool {
	return doc != nil && strings.HasPrefix(doc.MimeType, "image/")
}

func senderID(msg *tgbotapi.Message) int64 {
	if msg.From == nil {
		return 0
	}
	return msg.From.ID
}
