package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harunoki/petnavi-services/api/internal/interfaces/http/common"
	publicapp "github.com/harunoki/petnavi-services/api/internal/public/application"
	publicdomain "github.com/harunoki/petnavi-services/api/internal/public/domain"
)

// businessSearchHandler はユーザー向けのビジネス検索 API。
// クエリパラメータを SearchFilters へ写像し、検証はアプリケーション層へ委譲する。
func (h *Handler) businessSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()

		filter := publicapp.SearchFilters{
			Search: strings.TrimSpace(query.Get("search")),
		}

		if raw := strings.TrimSpace(query.Get("serviceType")); raw != "" {
			canonical := common.CanonicalServiceType(raw)
			if !common.KnownServiceType(canonical) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "サービス種別が不正です"})
				return
			}
			filter.ServiceType = canonical
		}

		isOpen, ok := common.ParseOptionalBool(query.Get("isOpen"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "isOpen は true/false で指定してください"})
			return
		}
		filter.IsOpen = isOpen

		lat, hasLat := common.ParseFloat(query.Get("lat"))
		lng, hasLng := common.ParseFloat(query.Get("lng"))
		radius, hasRadius := common.ParseFloat(query.Get("radiusKm"))
		if hasLat != hasLng {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "lat と lng はセットで指定してください"})
			return
		}
		if hasLat {
			filter.Center = &publicdomain.Point{Longitude: lng, Latitude: lat}
		}
		if hasRadius {
			filter.RadiusKm = &radius
		}

		offset, _ := common.ParseNonNegativeInt(query.Get("offset"), 0)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 0)
		paging := publicapp.Paging{Offset: offset, Limit: limit}

		page, err := h.businessQueries.Search(ctx, filter, paging)
		if err != nil {
			if errors.Is(err, publicapp.ErrInvalidQuery) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "検索条件の組み合わせが不正です"})
				return
			}
			h.logger.Printf("business search failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "ビジネス検索に失敗しました"})
			return
		}

		items := make([]businessSummaryResponse, 0, len(page.Results))
		for _, result := range page.Results {
			items = append(items, buildBusinessSummaryResponse(result))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, businessSearchResponse{
			Results: items,
			Pagination: paginationResponse{
				Total:   page.Total,
				Limit:   page.Limit,
				Offset:  page.Offset,
				HasMore: page.HasMore,
			},
		})
	}
}

func (h *Handler) businessDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ビジネスIDが指定されていません"})
			return
		}
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ビジネスIDの形式が不正です"})
			return
		}

		business, err := h.businessQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "ビジネスが見つかりません"})
				return
			}
			h.logger.Printf("business detail fetch failed id=%q err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "ビジネス情報の取得に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildBusinessDetailResponse(*business))
	}
}
