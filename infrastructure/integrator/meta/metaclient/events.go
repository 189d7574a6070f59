package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/meta/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SendEvents envia eventos de servidor para a Conversions API.
// Respostas não 2xx são devolvidas ao chamador, que registra o resultado.
func (c *MetaClient) SendEvents(ctx context.Context, req *metadomain.EventsRequest) (*utils.Response, error) {
	// O token vai no header: erros de transporte carregam a URL inteira
	endpoint := fmt.Sprintf("%s/%s/events", c.Cfg.Meta.URL, url.PathEscape(c.Cfg.Meta.PixelID))
	headers := map[string]string{"Authorization": "Bearer " + c.Cfg.Meta.ConversionsToken}

	resp, err := utils.PostJSON(ctx, c.HTTPClient, endpoint, headers, req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para a Conversions API")
		return nil, err
	}

	if !resp.OK() {
		var errResp metadomain.ErrorResponse
		if err := json.Unmarshal(resp.Body, &errResp); err == nil {
			entry := logrus.WithFields(logrus.Fields{
				"status_code": resp.StatusCode,
				"code":        errResp.Error.Code,
				"fbtrace_id":  errResp.Error.FBTraceID,
			})
			switch errResp.Kind() {
			case metadomain.FailureToken:
				entry.Error("Token da Conversions API inválido ou expirado")
			case metadomain.FailureTransient:
				entry.Warn("Conversions API indisponível temporariamente")
			case metadomain.FailureRejected:
				entry.WithField("title", errResp.Error.UserTitle).Error("Evento recusado pela Conversions API")
			default:
				entry.Warn(errResp.Error.Message)
			}
		}
	}

	return resp, nil
}
