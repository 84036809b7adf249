package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"assets-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAssetJSON verifica os nomes de campo e o formato de data no fio.
func TestAssetJSON(t *testing.T) {
	asset := models.Asset{
		ID:         "1",
		Name:       "Laptop Dell XPS",
		SerialNo:   "SN001",
		AssignDate: models.NewDate(2026, time.February, 17),
		Category:   "Computer",
	}

	data, err := json.Marshal(asset)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "1",
		"name": "Laptop Dell XPS",
		"serialNo": "SN001",
		"assignDate": "2026-02-17",
		"category": "Computer"
	}`, string(data))
}

// TestDateUnmarshal cobre os casos aceitos e rejeitados do formato de data.
func TestDateUnmarshal(t *testing.T) {
	var asset models.Asset

	err := json.Unmarshal([]byte(`{"assignDate":"2026-02-17"}`), &asset)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-17", asset.AssignDate.Format(models.DateLayout))

	// null e string vazia resultam em data zero (campo ausente).
	for _, raw := range []string{`{"assignDate":null}`, `{"assignDate":""}`} {
		var a models.Asset
		require.NoError(t, json.Unmarshal([]byte(raw), &a))
		assert.True(t, a.AssignDate.IsZero())
	}

	err = json.Unmarshal([]byte(`{"assignDate":"17/02/2026"}`), &asset)
	assert.Error(t, err)
}

// TestDateMarshalZero verifica que a data zero serializa como null.
func TestDateMarshalZero(t *testing.T) {
	data, err := json.Marshal(models.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

// TestDateScan verifica a leitura de colunas DATE.
func TestDateScan(t *testing.T) {
	var d models.Date
	require.NoError(t, d.Scan(time.Date(2026, time.February, 17, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, "2026-02-17", d.Format(models.DateLayout))

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	require.NoError(t, d.Scan([]byte("2026-02-17")))
	assert.Equal(t, "2026-02-17", d.Format(models.DateLayout))

	assert.Error(t, d.Scan(42))
}

// TestPageJSON verifica o envelope de paginação.
func TestPageJSON(t *testing.T) {
	page := models.Page{
		Content:       []models.Asset{},
		TotalElements: 15,
		TotalPages:    2,
		Page:          1,
		Size:          10,
	}

	data, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"content": [],
		"totalElements": 15,
		"totalPages": 2,
		"page": 1,
		"size": 10
	}`, string(data))
}
