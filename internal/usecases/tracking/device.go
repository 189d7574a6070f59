package tracking

import (
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/mssola/useragent"
)

// fillDevice completa os metadados ausentes a partir do User-Agent.
// Valores enviados pelo cliente têm prioridade.
func fillDevice(device domain.DeviceMetadata, userAgent string) domain.DeviceMetadata {
	if userAgent == "" {
		return device
	}

	ua := useragent.New(userAgent)
	browser, browserVersion := ua.Browser()
	osInfo := ua.OSInfo()

	device.BrowserName = firstNonEmpty(device.BrowserName, browser)
	device.BrowserVersion = firstNonEmpty(device.BrowserVersion, browserVersion)
	device.OSName = firstNonEmpty(device.OSName, osInfo.Name)
	device.OSVersion = firstNonEmpty(device.OSVersion, osInfo.Version)
	device.DeviceType = firstNonEmpty(device.DeviceType, deviceType(ua))

	return device
}

func deviceType(ua *useragent.UserAgent) string {
	if ua.Bot() {
		return "bot"
	}
	if ua.Mobile() {
		return "mobile"
	}
	return "desktop"
}

func firstNonEmpty(current *string, fallback string) *string {
	if utils.NonEmpty(current) != nil {
		return current
	}
	return utils.NonEmpty(&fallback)
}
