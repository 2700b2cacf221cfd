package screens

import (
	"ecoparques/internal/adapters/remote"
)

// UserMessage turns an error into the text a screen shows. Backend 4xx/5xx
// details are surfaced verbatim; transport failures get one fixed wording
// so users are not shown dial/DNS internals.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if remote.IsNetwork(err) {
		return "não foi possível conectar ao servidor — verifique sua conexão"
	}
	if detail := remote.Detail(err); detail != "" {
		return detail
	}
	return err.Error()
}
