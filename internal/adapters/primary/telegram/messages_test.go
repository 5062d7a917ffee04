package telegram

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"gps-coord-bot/internal/core/domain"
)

func TestResultMessage_Success(t *testing.T) {
	rec := &domain.Extraction{
		CreatedAt:  time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC),
		RawMatch:   "-6,6386S -51,9896W",
		Status:     domain.StatusOK,
		Coordinate: &domain.Coordinate{Latitude: -6.6386, Longitude: -51.9896},
	}

	msg := resultMessage(rec, nil)

	assert.Contains(t, msg, "Coordenadas Extraídas com Sucesso")
	assert.Contains(t, msg, "6.6386° S | 51.9896° W")
	assert.Contains(t, msg, "`-6.638600`")
	assert.Contains(t, msg, "`-51.989600`")
	assert.Contains(t, msg, "`-6,6386S -51,9896W`")
	assert.Contains(t, msg, "26/08/2026 14:30:00")
}

func TestResultMessage_NoText(t *testing.T) {
	rec := &domain.Extraction{Status: domain.StatusNoText}

	msg := resultMessage(rec, domain.ErrNoTextFound)

	assert.Contains(t, msg, "Não consegui extrair texto")
}

func TestResultMessage_NoCoordinates(t *testing.T) {
	rec := &domain.Extraction{Status: domain.StatusNoCoordinates}

	msg := resultMessage(rec, domain.ErrNoCoordinatesFound)

	assert.Contains(t, msg, "Não encontrei coordenadas GPS")
	assert.Contains(t, msg, "-6,6386S -51,9896W")
}

func TestResultMessage_ParseFailed(t *testing.T) {
	rec := &domain.Extraction{
		Status:   domain.StatusParseFailed,
		RawMatch: "-99,0000S -51,9896W",
	}

	msg := resultMessage(rec, domain.ErrInvalidLatitude)

	assert.Contains(t, msg, "Não consegui processar as coordenadas")
	assert.Contains(t, msg, "`-99,0000S -51,9896W`")
}

func TestResultMessage_UnsupportedImage(t *testing.T) {
	msg := resultMessage(nil, domain.ErrUnsupportedImage)

	assert.Contains(t, msg, "Ocorreu um erro ao processar a imagem")
}

func TestStatsMessage(t *testing.T) {
	s := &domain.Stats{
		Total:         10,
		Succeeded:     8,
		NoText:        1,
		NoCoordinates: 1,
		AvgOCRMillis:  250,
	}

	msg := statsMessage(s)

	assert.Contains(t, msg, "Imagens processadas: 10")
	assert.Contains(t, msg, "Coordenadas extraídas: 8")
	assert.Contains(t, msg, "Taxa de sucesso: 80%")
	assert.Contains(t, msg, "Tempo médio de OCR: 250 ms")
}

func TestIsImageDocument(t *testing.T) {
	assert.False(t, isImageDocument(nil))
	assert.True(t, isImageDocument(&tgbotapi.Document{MimeType: "image/jpeg"}))
	assert.False(t, isImageDocument(&tgbotapi.Document{MimeType: "application/pdf"}))
}

func TestPickImageFile_PrefersLargestPhoto(t *testing.T) {
	msg := &tgbotapi.Message{
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", FileUniqueID: "u1", Width: 90},
			{FileID: "large", FileUniqueID: "u2", Width: 1280},
		},
	}

	fileID, fileName := pickImageFile(msg)

	assert.Equal(t, "large", fileID)
	assert.Equal(t, "photo_u2.jpg", fileName)
}

func TestPickImageFile_Document(t *testing.T) {
	msg := &tgbotapi.Message{
		Document: &tgbotapi.Document{FileID: "doc1", FileName: "mapa.png", MimeType: "image/png"},
	}

	fileID, fileName := pickImageFile(msg)

	assert.Equal(t, "doc1", fileID)
	assert.Equal(t, "mapa.png", fileName)
}
