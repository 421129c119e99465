package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordTokenRequest(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordTokenRequest(true)
		RecordTokenRequest(false)
	})
}

func TestUpdateArticlesTotal(t *testing.T) {
	assert.NotPanics(t, func() {
		UpdateArticlesTotal(0)
		UpdateArticlesTotal(42)
	})
}

func TestRecordDBQuery(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordDBQuery("list_articles", 5*time.Millisecond)
		RecordDBQuery("get_article", 0)
	})
}

func TestRecordHTTPRequest(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordHTTPRequest("GET", "/articles/published", "200", 12*time.Millisecond)
		RecordHTTPRequest("POST", "/articles", "401", time.Millisecond)
	})
}
