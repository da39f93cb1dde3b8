package engine

import (
	"fmt"
	"time"

	"eventchance/pkg/api"
	"eventchance/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Типы записей лога загрузки
const (
	LogInfo     = "INFO"
	LogSuppress = "SUPPRESS"
)

// AddLog добавляет лог в историю инстанса
func (i *Instance) AddLog(text, logType string) {
	i.Logs = append(i.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d_%d", i.MapID, i.Visit, len(i.Logs)),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"map_id":    i.MapID,
		"visit":     i.Visit,
		"component": "map_log",
		"log_type":  logType,
	}).Debug(text)
}
