package tags

import (
	"regexp"
	"strconv"
	"strings"

	"eventchance/internal/domain"

	"github.com/sirupsen/logrus"
)

// DefaultPrefix - префикс ключей по умолчанию (<evc_chance:50>)
const DefaultPrefix = "evc_"

// Ключи директив без префикса
const (
	KeyChance      = "chance"
	KeySection     = "section"
	KeyExclusive   = "excl_section"
	KeyDisableMode = "disable_mode"
)

// Числовой префикс значения, как его понимает parseFloat
var numberRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Parser превращает метаданные в директивы.
type Parser struct {
	Prefix string
	Log    logrus.FieldLogger
}

// NewParser создает парсер. Пустой префикс заменяется на DefaultPrefix.
func NewParser(prefix string, log logrus.FieldLogger) *Parser {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Parser{Prefix: prefix, Log: log}
}

// ParseNote - ExtractMeta + Parse
func (p *Parser) ParseNote(note string) (domain.Directives, error) {
	return p.Parse(ExtractMeta(note))
}

// Parse строит директивы объекта.
// Ошибка возвращается только для некорректного disable_mode.
func (p *Parser) Parse(meta Meta) (domain.Directives, error) {
	d := domain.Directives{Mode: domain.EraseMode()}

	// 1. Режим подавления
	if raw, ok := meta.Lookup(p.Prefix, KeyDisableMode); ok {
		mode, err := p.parseDisableMode(raw)
		if err != nil {
			return domain.Directives{}, err
		}
		d.Mode = mode
	}

	// 2. Эксклюзивная секция
	if raw, ok := meta.Lookup(p.Prefix, KeyExclusive); ok {
		key := parseExclusive(raw)
		if key.Name == "" {
			p.Log.WithField("tag", p.Prefix+KeyExclusive).Debug("empty exclusive section name")
		}
		d.Exclusive = &key
	}

	// 3. Обычная секция
	if raw, ok := meta.Lookup(p.Prefix, KeySection); ok {
		if name := strings.TrimSpace(raw); name != "" {
			d.Section = name
		} else {
			p.Log.WithField("tag", p.Prefix+KeySection).Warn("empty section tag ignored")
		}
	}

	// 4. Шанс
	if raw, ok := meta.Lookup(p.Prefix, KeyChance); ok {
		if chance, ok := ParseChance(raw); ok {
			d.Chance = &chance
		} else {
			p.Log.WithFields(logrus.Fields{
				"tag":   p.Prefix + KeyChance,
				"value": raw,
			}).Warn("unparsable chance ignored")
		}
	}

	return d, nil
}

// ParseChance разбирает число и нормализует его в [0,1].
// Значения больше 1 считаются процентами; 1.0 остается 1.0.
func ParseChance(raw string) (float64, bool) {
	num := numberRe.FindString(strings.TrimSpace(raw))
	if num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return NormalizeChance(v), true
}

// NormalizeChance: v <= 1 ? v : v / 100
func NormalizeChance(v float64) float64 {
	if v <= 1 {
		return v
	}
	return v / 100.0
}

// parseExclusive: "category name" или "name" (категория default), в нижнем регистре.
// Пустое значение дает секцию "" в категории default.
func parseExclusive(raw string) domain.ExclusiveKey {
	parts := fields(strings.ToLower(raw))
	switch len(parts) {
	case 0:
		return domain.ExclusiveKey{Category: domain.DefaultCategory}
	case 1:
		return domain.ExclusiveKey{Category: domain.DefaultCategory, Name: parts[0]}
	default:
		return domain.ExclusiveKey{Category: parts[0], Name: parts[1]}
	}
}

// parseDisableMode: "kind slot [ON|OFF]"
func (p *Parser) parseDisableMode(raw string) (domain.DisableMode, error) {
	key := p.Prefix + KeyDisableMode
	parts := fields(raw)

	if len(parts) < 2 {
		return domain.DisableMode{}, &TagError{
			Key:    key,
			Value:  raw,
			Reason: `disable mode expects 2 values, the kind and the self-switch to set (A, B, C or D), e.g. "switch A"`,
			Err:    ErrMalformedDisableMode,
		}
	}

	kind, ok := domain.ParseDisableKind(parts[0])
	if !ok {
		p.Log.WithFields(logrus.Fields{"tag": key, "value": raw}).Warn("unknown disable mode, falling back to erase")
		return domain.EraseMode(), nil
	}
	if kind == domain.DisableErase {
		return domain.EraseMode(), nil
	}

	slot, err := domain.ParseSlot(parts[1])
	if err != nil {
		return domain.DisableMode{}, &TagError{
			Key:    key,
			Value:  raw,
			Reason: err.Error(),
			Err:    ErrMalformedDisableMode,
		}
	}

	value := true
	if len(parts) >= 3 {
		value = strings.ToUpper(parts[2]) == "ON"
	}
	return domain.SwitchMode(slot, value), nil
}
