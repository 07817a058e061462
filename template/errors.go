package template

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/flosch/pongo2/v6"
	"github.com/hellodex/dbot-mcp/api"
	"github.com/hellodex/dbot-mcp/model"
	"github.com/hellodex/dbot-mcp/util"
)

const apiErrorTemplate = `❌ {{ op }} failed:

🔍 Error Status: Failed
{% if response %}📄 API Response: {{ response }}
{% endif %}{% if request %}📋 Request Parameters: {{ request }}
{% endif %}
📚 Documentation: {{ docs }}`

const networkErrorTemplate = `❌ {{ op }} failed:

{{ detail }}{% if request %}📋 Request Parameters: {{ request }}
{% endif %}
💡 Suggestions:
- Check if the API key is correct.
- Check if the network connection is stable.
- Check if the parameter format is correct.
- Check if the wallet ID is valid.
`

// FormatAPIError renders an envelope with err=true. Wallet ids in request are masked.
func FormatAPIError(op string, env *model.Envelope, request any, defaultDocs string) (string, error) {
	docs := defaultDocs
	var response string
	if env != nil {
		if env.Docs != "" {
			docs = env.Docs
		}
		if hasPayload(env.Res) {
			response = util.PrettyRaw(env.Res)
		}
	}

	return render(apiErrorTemplate, pongo2.Context{
		"op":       op,
		"response": response,
		"request":  maskedRequest(request),
		"docs":     docs,
	})
}

// FormatNetworkError renders a failed exchange: an HTTP status, no response at all, or anything else.
func FormatNetworkError(op string, err error, request any) (string, error) {
	var (
		detail  string
		httpErr *api.HTTPError
		netErr  *api.NetworkError
	)
	switch {
	case errors.As(err, &httpErr):
		detail = fmt.Sprintf("🌐 HTTP Status: %d %s\n📄 Error Response: %s\n",
			httpErr.StatusCode, httpErr.Status, util.PrettyRaw(httpErr.Body))
	case errors.As(err, &netErr):
		detail = fmt.Sprintf("🔌 Network Error: No response from the server, please check your network connection.\n📡 Request Details: %v\n", netErr.Err)
	default:
		detail = fmt.Sprintf("⚠️ Unknown Error: %v\n", err)
	}

	return render(networkErrorTemplate, pongo2.Context{
		"op":      op,
		"detail":  detail,
		"request": maskedRequest(request),
	})
}

func maskedRequest(request any) string {
	if request == nil {
		return ""
	}
	return util.PrettyJSON(util.MaskRequest(request))
}

func hasPayload(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}
