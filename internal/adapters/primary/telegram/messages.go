package telegram

import (
	"errors"
	"fmt"
	"time"

	"gps-coord-bot/internal/core/domain"
)

const welcomeMessage = "👋 *Bem-vindo ao Bot de Coordenadas GPS!*\n\n" +
	"Envie uma foto com coordenadas GPS visíveis e eu vou extrair as informações para você.\n\n" +
	"📸 *Formato esperado das coordenadas:*\n" +
	"`-6,6386S -51,9896W`\n\n" +
	"Comandos disponíveis:\n" +
	"/start - Mostra esta mensagem\n" +
	"/help - Ajuda detalhada\n" +
	"/stats - Estatísticas do chat\n"

const helpMessage = "🆘 *AJUDA - Como usar o bot*\n\n" +
	"1️⃣ *Tire uma foto* com um aplicativo que adicione coordenadas GPS\n" +
	"   Exemplos: GPS Map Camera, Solocator, ou câmera nativa com GPS ativado\n\n" +
	"2️⃣ *Envie a foto* para este chat\n\n" +
	"3️⃣ *O bot vai:*\n" +
	"   ✓ Extrair o texto da imagem (OCR)\n" +
	"   ✓ Procurar pelas coordenadas GPS\n" +
	"   ✓ Validar e formatar as coordenadas\n" +
	"   ✓ Mostrar o resultado\n\n" +
	"📍 *Formato de coordenadas suportado:*\n" +
	"`-6,6386S -51,9896W`\n" +
	"(Latitude Longitude com direção)\n\n" +
	"❓ *Dúvidas?*\n" +
	"Certifique-se de que:\n" +
	"• A câmera tem GPS ativado\n" +
	"• As coordenadas estão visíveis na imagem\n" +
	"• O formato é similar ao exemplo acima\n"

const textPromptMessage = "📸 Por favor, envie uma *foto* com coordenadas GPS visíveis.\n\n" +
	"Use /help para mais informações."

const processingMessage = "⏳ Processando a imagem... Por favor, aguarde."

const noTextMessage = "❌ Não consegui extrair texto da imagem.\n" +
	"Certifique-se de que as coordenadas estão visíveis e legíveis."

const noCoordinatesMessage = "❌ Não encontrei coordenadas GPS na imagem.\n\n" +
	"📍 Formato esperado: `-6,6386S -51,9896W`\n\n" +
	"Verifique se:\n" +
	"• As coordenadas estão visíveis na imagem\n" +
	"• O formato é similar ao exemplo acima\n" +
	"• A câmera tem GPS ativado"

const downloadErrorMessage = "❌ Não consegui baixar a imagem.\n" +
	"Por favor, tente novamente."

const internalErrorMessage = "❌ Ocorreu um erro ao processar a imagem.\n" +
	"Por favor, tente novamente com outra imagem."

const statsDisabledMessage = "ℹ️ O histórico de extrações está desativado neste bot."

// resultMessage builds the reply for a finished extraction attempt.
func resultMessage(rec *domain.Extraction, err error) string {
	switch {
	case err == nil:
		return successMessage(rec)
	case errors.Is(err, domain.ErrNoTextFound):
		return noTextMessage
	case errors.Is(err, domain.ErrNoCoordinatesFound):
		return noCoordinatesMessage
	case errors.Is(err, domain.ErrMalformedCoordinates),
		errors.Is(err, domain.ErrInvalidLatitude),
		errors.Is(err, domain.ErrInvalidLongitude):
		return parseFailedMessage(rec)
	case errors.Is(err, domain.ErrUnsupportedImage):
		return internalErrorMessage
	default:
		return internalErrorMessage
	}
}

func successMessage(rec *domain.Extraction) string {
	c := rec.Coordinate
	return fmt.Sprintf(
		"✅ *Coordenadas Extraídas com Sucesso!*\n\n"+
			"📍 *Localização:* %s\n\n"+
			"*Valores Numéricos:*\n"+
			"• Latitude: `%.6f`\n"+
			"• Longitude: `%.6f`\n\n"+
			"*Formato Original:* `%s`\n\n"+
			"⏰ Processado em: %s",
		c.Format(), c.Latitude, c.Longitude, rec.RawMatch,
		rec.CreatedAt.Format("02/01/2006 15:04:05"),
	)
}

func parseFailedMessage(rec *domain.Extraction) string {
	raw := ""
	if rec != nil {
		raw = rec.RawMatch
	}
	return fmt.Sprintf(
		"❌ Não consegui processar as coordenadas.\n\n"+
			"Coordenadas encontradas: `%s`\n\n"+
			"Verifique se o formato está correto.",
		raw,
	)
}

func statsMessage(s *domain.Stats) string {
	return fmt.Sprintf(
		"📊 *Estatísticas deste chat*\n\n"+
			"• Imagens processadas: %d\n"+
			"• Coordenadas extraídas: %d\n"+
			"• Sem texto legível: %d\n"+
			"• Sem coordenadas: %d\n"+
			"• Falhas de formato: %d\n"+
			"• Taxa de sucesso: %.0f%%\n"+
			"• Tempo médio de OCR: %.0f ms\n\n"+
			"⏰ Atualizado em: %s",
		s.Total, s.Succeeded, s.NoText, s.NoCoordinates, s.ParseFailed,
		s.SuccessRate()*100, s.AvgOCRMillis,
		time.Now().Format("02/01/2006 15:04:05"),
	)
}
