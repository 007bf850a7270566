package cli

import (
	"os"
	"testing"

	"github.com/iudanet/progressboard/internal/logger"
)

func TestMain(m *testing.M) {
	// Логи сервисов не нужны в выводе тестов
	logger.NewNoop().SetDefault()
	os.Exit(m.Run())
}
