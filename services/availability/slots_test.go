package availability

import (
	"testing"

	"mesafy/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAutoSlots(t *testing.T) {
	svc := models.Service{
		StartTime:              "13:00",
		EndTime:                "16:00",
		DefaultDurationMinutes: 90,
		BufferMinutes:          15,
	}
	// 13:00, advance by 105 to 14:45 (still before 16:00), advance to 16:30
	// which is past the close. The 14:45 seating overruns 16:00; that is fine,
	// only the start must fall inside the window.
	assert.Equal(t, []string{"13:00", "14:45"}, GenerateAutoSlots(svc))
}

func TestGenerateAutoSlotsStartBeforeClose(t *testing.T) {
	svc := models.Service{
		StartTime:              "20:00",
		EndTime:                "23:00",
		DefaultDurationMinutes: 60,
		BufferMinutes:          30,
	}
	// The cursor lands exactly on the close at 23:00; the close is exclusive.
	assert.Equal(t, []string{"20:00", "21:30"}, GenerateAutoSlots(svc))

	svc.EndTime = "22:30"
	assert.Equal(t, []string{"20:00", "21:30"}, GenerateAutoSlots(svc))
}

func TestGenerateAutoSlotsShortWindow(t *testing.T) {
	svc := models.Service{
		StartTime:              "13:00",
		EndTime:                "14:00",
		DefaultDurationMinutes: 90,
		BufferMinutes:          15,
	}
	// A window shorter than one seating still offers its opening slot.
	assert.Equal(t, []string{"13:00"}, GenerateAutoSlots(svc))
}

func TestGenerateAutoSlotsDegenerate(t *testing.T) {
	svc := models.Service{
		StartTime:              "13:00",
		EndTime:                "13:00",
		DefaultDurationMinutes: 90,
		BufferMinutes:          15,
	}
	assert.Empty(t, GenerateAutoSlots(svc))

	svc.StartTime = "bogus"
	assert.Empty(t, GenerateAutoSlots(svc))
}

func TestServiceSlotsManualMode(t *testing.T) {
	svc := models.Service{
		StartTime:              "20:00",
		EndTime:                "23:00",
		DefaultDurationMinutes: 90,
		BufferMinutes:          15,
		SlotGenerationMode:     models.SlotModeManual,
		ManualSlots:            []string{"20:15", "21:00", "22:00"},
	}
	// Manual slots are used verbatim, never regenerated.
	assert.Equal(t, []string{"20:15", "21:00", "22:00"}, ServiceSlots(svc))

	svc.SlotGenerationMode = models.SlotModeAuto
	assert.Equal(t, []string{"20:00", "21:45"}, ServiceSlots(svc))
}
