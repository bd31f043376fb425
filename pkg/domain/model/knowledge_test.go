package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

func validRecord() *model.KnowledgeRecord {
	return &model.KnowledgeRecord{
		ID:          "wifi_test",
		Problem:     "Wi-Fi not connecting",
		Description: "Device cannot join the wireless network",
		DeviceType:  "laptop",
		OS:          "windows",
		Category:    "networking",
		Symptoms:    []string{"no wifi", "cannot connect"},
		Causes: []model.CauseEntry{
			{Cause: "Wi-Fi adapter disabled", Likelihood: types.LikelihoodHigh},
		},
		Solutions: []model.SolutionEntry{
			{Step: 1, Action: "Check if Wi-Fi is enabled", Why: "It may be off", RiskLevel: types.RiskLevelSafe},
		},
	}
}

func TestKnowledgeRecordValidate(t *testing.T) {
	t.Run("valid record passes", func(t *testing.T) {
		gt.NoError(t, validRecord().Validate())
	})

	t.Run("missing ID fails", func(t *testing.T) {
		rec := validRecord()
		rec.ID = ""
		gt.Value(t, rec.Validate()).NotNil()
	})

	t.Run("empty solutions fail", func(t *testing.T) {
		rec := validRecord()
		rec.Solutions = nil
		gt.Value(t, rec.Validate()).NotNil()
	})

	t.Run("invalid cause likelihood fails", func(t *testing.T) {
		rec := validRecord()
		rec.Causes[0].Likelihood = "probably"
		gt.Value(t, rec.Validate()).NotNil()
	})

	t.Run("invalid solution risk level fails", func(t *testing.T) {
		rec := validRecord()
		rec.Solutions[0].RiskLevel = "extreme"
		gt.Value(t, rec.Validate()).NotNil()
	})
}

func TestSearchableText(t *testing.T) {
	rec := validRecord()
	text := rec.SearchableText()
	gt.String(t, text).Contains("Wi-Fi not connecting")
	gt.String(t, text).Contains("wireless network")
	gt.String(t, text).Contains("no wifi")
}

func TestAttributeValue(t *testing.T) {
	rec := validRecord()
	gt.Value(t, rec.AttributeValue("device_type")).Equal("laptop")
	gt.Value(t, rec.AttributeValue("os")).Equal("windows")
	gt.Value(t, rec.AttributeValue("category")).Equal("networking")
	gt.Value(t, rec.AttributeValue("model")).Equal("")
}

func TestHistoryRecent(t *testing.T) {
	var h model.History
	for i := 0; i < 10; i++ {
		h = append(h, model.Message{Role: types.RoleUser, Content: "msg"})
	}
	gt.Array(t, h.Recent(6)).Length(6)
	gt.Array(t, h.Recent(20)).Length(10)
	gt.Array(t, h.Recent(0)).Length(10)
}
