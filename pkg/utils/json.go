package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata o valor como JSON indentado; em caso de erro retorna a mensagem
func PrettyJson(in any) string {
	buffer, err := json.Marshal(in)
	if err != nil {
		return err.Error()
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		return err.Error()
	}
	return out.String()
}
