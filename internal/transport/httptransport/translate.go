package httptransport

import (
	"errors"
	"net/http"

	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	"github.com/NastyaGoryachaya/fav-crypto/internal/ports/errcode"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, errs.ErrNetwork):
		return errcode.UpstreamUnavailable
	case errors.Is(err, errs.ErrParse):
		return errcode.UpstreamBadPayload
	default:
		return errcode.Internal
	}
}

// statusFor - HTTP-статус для кода ошибки: проблемы CoinGecko это 502, остальное 500.
func statusFor(code errcode.Code) int {
	switch code {
	case errcode.UpstreamUnavailable, errcode.UpstreamBadPayload:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
