// Package savefile читает и пишет бинарные сохранения self-switch'ей.
package savefile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"eventchance/internal/domain"
)

// ErrNoSave - файла сохранения еще нет
var ErrNoSave = errors.New("save file does not exist")

func (s *Service) Load() (*domain.SaveGame, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*domain.SaveGame, error) {
	// 1. Читаем заголовок целиком
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 && header.Version != Version2 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, CurrentVersion)
	}
	if header.SwitchCount < 0 {
		return nil, fmt.Errorf("negative switch count: %d", header.SwitchCount)
	}

	save := &domain.SaveGame{
		Seed:         header.Seed,
		Timestamp:    header.Timestamp,
		CurrentMapID: int(header.CurrentMapID),
		Switches:     make([]domain.SwitchState, 0, min(int(header.SwitchCount), maxPrealloc)),
		Visits:       map[int]int{},
	}

	// 2. Читаем переключатели
	for i := 0; i < int(header.SwitchCount); i++ {
		var rec SwitchRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read switch %d: %w", i, err)
		}

		slot, err := domain.ParseSlot(string(rune(rec.Slot)))
		if err != nil {
			return nil, fmt.Errorf("switch %d: %w", i, err)
		}

		save.Switches = append(save.Switches, domain.SwitchState{
			SwitchKey: domain.SwitchKey{
				MapID:    int(rec.MapID),
				ObjectID: int(rec.ObjectID),
				Slot:     slot,
			},
			Value: rec.Value == 1,
		})
	}

	if header.Version == Version1 {
		return save, nil
	}

	// 3. Читаем визиты
	var visitCount int32
	if err := binary.Read(r, binary.LittleEndian, &visitCount); err != nil {
		return nil, fmt.Errorf("failed to read visit count: %w", err)
	}
	if visitCount < 0 {
		return nil, fmt.Errorf("negative visit count: %d", visitCount)
	}
	for i := 0; i < int(visitCount); i++ {
		var rec VisitRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read visit %d: %w", i, err)
		}
		save.Visits[int(rec.MapID)] = int(rec.Visits)
	}

	return save, nil
}
