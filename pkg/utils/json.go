package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa o valor indentado com dois espaços
func PrettyJson(in any) string {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("utils: failed to encode value as JSON")
		return ""
	}

	return string(out)
}
