package savefile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"eventchance/internal/domain"
)

const (
	MagicHeader string = `EVCS` // 4 байта
	Version1    uint32 = 1

	// Version2 добавляет после переключателей счетчики визитов карт
	Version2       uint32 = 2
	CurrentVersion        = Version2
)

// maxPrealloc - больше записей заранее не выделяем: счетчик в заголовке
// битого файла может быть любым
const maxPrealloc = 4096

// slotCodes - слот хранится одним байтом
var slotCodes = map[domain.Slot]uint8{
	domain.SlotA: 'A',
	domain.SlotB: 'B',
	domain.SlotC: 'C',
	domain.SlotD: 'D',
}

// FileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк.
type FileHeader struct {
	Magic        [4]byte // 4 байта
	Version      uint32  // 4 байта
	Seed         int64   // 8 байт
	Timestamp    int64   // 8 байт
	CurrentMapID int32   // 4 байта
	SwitchCount  int32   // 4 байта
}

// VisitRecord - число визитов одной карты.
type VisitRecord struct {
	MapID  int32 // 4
	Visits int32 // 4
}

// SwitchRecord - одна запись self-switch'а.
type SwitchRecord struct {
	MapID    int32 // 4
	ObjectID int32 // 4
	Slot     uint8 // 1
	Value    uint8 // 1
}

type Service struct {
	Path string
}

func NewService(path string) *Service {
	return &Service{Path: path}
}

// Save атомарно пишет сохранение: во временный файл, затем rename.
func (s *Service) Save(save *domain.SaveGame) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save directory: %w", err)
		}
	}

	tmpPath := s.Path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := writeBinary(w, save); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}

func writeBinary(w io.Writer, s *domain.SaveGame) error {
	// 1. Заголовок
	header := FileHeader{
		Version:      CurrentVersion,
		Seed:         s.Seed,
		Timestamp:    s.Timestamp,
		CurrentMapID: int32(s.CurrentMapID),
		SwitchCount:  int32(len(s.Switches)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Переключатели
	for _, st := range s.Switches {
		code, ok := slotCodes[st.Slot]
		if !ok {
			return fmt.Errorf("invalid slot %q for switch %s", st.Slot, st.SwitchKey)
		}

		rec := SwitchRecord{
			MapID:    int32(st.MapID),
			ObjectID: int32(st.ObjectID),
			Slot:     code,
		}
		if st.Value {
			rec.Value = 1
		}

		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}

	// 3. Визиты, по возрастанию ID карты
	mapIDs := make([]int, 0, len(s.Visits))
	for id := range s.Visits {
		mapIDs = append(mapIDs, id)
	}
	sort.Ints(mapIDs)

	if err := binary.Write(w, binary.LittleEndian, int32(len(mapIDs))); err != nil {
		return fmt.Errorf("failed to write visit count: %w", err)
	}
	for _, id := range mapIDs {
		rec := VisitRecord{MapID: int32(id), Visits: int32(s.Visits[id])}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}

	return nil
}
