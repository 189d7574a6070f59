package tracking

import (
	"testing"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestFillDevice(t *testing.T) {
	t.Run("valores do cliente têm prioridade", func(t *testing.T) {
		device := fillDevice(domain.DeviceMetadata{BrowserName: utils.StringPtr("Brave")}, chromeUA)

		assert.Equal(t, "Brave", *device.BrowserName)
		assert.Equal(t, "120.0.0.0", *device.BrowserVersion)
		assert.Equal(t, "Windows", *device.OSName)
		assert.Equal(t, "desktop", *device.DeviceType)
	})

	t.Run("celular", func(t *testing.T) {
		ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1"

		device := fillDevice(domain.DeviceMetadata{}, ua)

		assert.Equal(t, "mobile", *device.DeviceType)
		assert.Equal(t, "Safari", *device.BrowserName)
	})

	t.Run("sem user agent", func(t *testing.T) {
		device := fillDevice(domain.DeviceMetadata{}, "")

		assert.Nil(t, device.BrowserName)
		assert.Nil(t, device.DeviceType)
	})
}
