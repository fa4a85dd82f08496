package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harunoki/petnavi-services/api/internal/interfaces/http/common"
)

// reviewListHandler はビジネス単位のレビュー一覧 API。
// DDD では Query Service を介して読み取り専用ユースケースを実現する。
func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		businessID := strings.TrimSpace(r.URL.Query().Get("businessId"))
		if businessID == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "businessId を指定してください"})
			return
		}
		if _, err := primitive.ObjectIDFromHex(businessID); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ビジネスIDの形式が不正です"})
			return
		}

		reviews, err := h.reviewQueries.ListByBusiness(ctx, businessID)
		if err != nil {
			h.logger.Printf("review list fetch failed businessId=%q err=%v", businessID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "レビューの取得に失敗しました"})
			return
		}

		items := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			items = append(items, buildReviewResponse(review))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}
