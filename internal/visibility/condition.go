// Package visibility решает, скрыт ли объект, по его условию над self-switch'ами.
//
// Условие - выражение expr над переменными A, B, C, D (bool), например
// "A" или "A && !B". Так слой представления "видит" переключатели, которые
// выставил Disabler в режиме switch.
package visibility

import (
	"fmt"
	"strings"
	"sync"

	"eventchance/internal/domain"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env - окружение выражения
type Env struct {
	A bool
	B bool
	C bool
	D bool
}

// EnvFrom строит окружение из значений слотов
func EnvFrom(values map[domain.Slot]bool) Env {
	return Env{
		A: values[domain.SlotA],
		B: values[domain.SlotB],
		C: values[domain.SlotC],
		D: values[domain.SlotD],
	}
}

// Condition - скомпилированное условие
type Condition struct {
	Source  string
	program *vm.Program
}

// Compile компилирует условие. Результат обязан быть bool.
func Compile(src string) (*Condition, error) {
	prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile hide condition %q: %w", src, err)
	}
	return &Condition{Source: src, program: prog}, nil
}

// Eval вычисляет условие
func (c *Condition) Eval(env Env) (bool, error) {
	out, err := vm.Run(c.program, env)
	if err != nil {
		return false, fmt.Errorf("run hide condition %q: %w", c.Source, err)
	}
	hidden, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("hide condition %q returned %T", c.Source, out)
	}
	return hidden, nil
}

// Cache хранит скомпилированные условия; одна карта обычно повторяет
// одни и те же условия на многих объектах.
type Cache struct {
	mu    sync.Mutex
	conds map[string]*Condition
}

func NewCache() *Cache {
	return &Cache{conds: make(map[string]*Condition)}
}

// Get компилирует условие при первом обращении.
func (c *Cache) Get(src string) (*Condition, error) {
	src = strings.TrimSpace(src)

	c.mu.Lock()
	defer c.mu.Unlock()

	if cond, ok := c.conds[src]; ok {
		return cond, nil
	}
	cond, err := Compile(src)
	if err != nil {
		return nil, err
	}
	c.conds[src] = cond
	return cond, nil
}
