package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	emaildomain "mailagent-backend/internal/email/domain"
	"mailagent-backend/internal/email/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmailUsecase struct {
	usecase.EmailUsecase
	emails []*emaildomain.Email
	query  usecase.ListQuery
}

func (f *fakeEmailUsecase) ListEmails(_ string, query usecase.ListQuery) ([]*emaildomain.Email, error) {
	f.query = query
	return f.emails, nil
}

func TestGetEmailsCountIsPageSize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &fakeEmailUsecase{emails: []*emaildomain.Email{
		{ID: "e1", Category: "Important"},
		{ID: "e2", Category: "Important"},
	}}
	handler := NewEmailHandler(uc, zap.NewNop())

	r := gin.New()
	r.GET("/emails", func(c *gin.Context) {
		c.Set("userID", "user-1")
		handler.GetEmails(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/emails?category=Important&limit=10&offset=20", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// count reflects the returned page, after category filtering; there is
	// no store-wide total field.
	assert.JSONEq(t, "2", string(body["count"]))
	assert.JSONEq(t, "10", string(body["limit"]))
	assert.JSONEq(t, "20", string(body["offset"]))
	assert.NotContains(t, body, "total")

	assert.Equal(t, "Important", uc.query.Category)
	assert.Equal(t, 10, uc.query.Limit)
	assert.Equal(t, 20, uc.query.Offset)
}
