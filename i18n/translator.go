package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "column"); placeholders are written as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":   "expected {expected}, got {got}",
		"required":       "required value missing",
		"unknown_column": "column {column} is not declared in the contract",
		"missing_column": "column {column} is declared in the contract but absent from the dataset",
		"duplicate_key":  "key {key} duplicated",
		"ragged_row":     "row has {got} cells, header has {want}",
		"too_small":      "must be >= {min}",
		"too_big":        "must be <= {max}",
		"pattern":        "does not match pattern {pattern}",
		"invalid_enum":   "must be one of {allowed}",
		"parse_error":    "parse error",
	},
	"ja": {
		"invalid_type":   "型が不正です ({expected} を期待、実際は {got})",
		"required":       "必須の値がありません",
		"unknown_column": "列 {column} はコントラクトに定義されていません",
		"missing_column": "列 {column} がデータセットに存在しません",
		"duplicate_key":  "キー {key} が重複しています",
		"ragged_row":     "行のセル数 {got} がヘッダーの列数 {want} と一致しません",
		"too_small":      "{min} 以上である必要があります",
		"too_big":        "{max} 以下である必要があります",
		"pattern":        "パターン {pattern} に一致しません",
		"invalid_enum":   "{allowed} のいずれかである必要があります",
		"parse_error":    "解析エラー",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
