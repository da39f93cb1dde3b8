// Package tags разбирает заметки объектов карты в типизированные директивы.
//
// Заметка - произвольный текст с блоками вида <key:value> или <key>.
// Блоки без значения получают значение "true", повторный ключ перезаписывает
// предыдущий.
package tags

import (
	"regexp"
	"strings"
)

// Блок метаданных: <key> или <key:value>
var metaRe = regexp.MustCompile(`<([^<>:]+)(:?)([^>]*)>`)

// Meta - метаданные одной заметки
type Meta map[string]string

// ExtractMeta достает все блоки метаданных из заметки.
func ExtractMeta(note string) Meta {
	meta := Meta{}
	for _, m := range metaRe.FindAllStringSubmatch(note, -1) {
		key := m[1]
		if m[2] == ":" {
			meta[key] = m[3]
		} else {
			meta[key] = "true"
		}
	}
	return meta
}

// Lookup возвращает значение ключа с префиксом.
func (m Meta) Lookup(prefix, key string) (string, bool) {
	v, ok := m[prefix+key]
	return v, ok
}

// fields делит значение тега по пробелам, лишние пробелы игнорируются
func fields(v string) []string {
	return strings.Fields(v)
}
