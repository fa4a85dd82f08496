package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harunoki/petnavi-services/api/internal/interfaces/http/common"
	publicapp "github.com/harunoki/petnavi-services/api/internal/public/application"
)

type createReviewRequest struct {
	BusinessID string `json:"businessId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (req *createReviewRequest) validate() error {
	req.BusinessID = strings.TrimSpace(req.BusinessID)
	if req.BusinessID == "" {
		return errors.New("ビジネスIDは必須です")
	}
	if _, err := primitive.ObjectIDFromHex(req.BusinessID); err != nil {
		return errors.New("ビジネスIDの形式が不正です")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return errors.New("評価は1〜5の範囲で入力してください")
	}
	comment := strings.TrimSpace(req.Comment)
	if utf8.RuneCountInString(comment) > common.MaxCommentRunes {
		return fmt.Errorf("コメントは%d文字以内で入力してください", common.MaxCommentRunes)
	}
	req.Comment = comment
	return nil
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

func (req *updateReviewRequest) validate() error {
	if req.Rating == nil && req.Comment == nil {
		return errors.New("変更内容が指定されていません")
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return errors.New("評価は1〜5の範囲で入力してください")
	}
	if req.Comment != nil {
		comment := strings.TrimSpace(*req.Comment)
		if utf8.RuneCountInString(comment) > common.MaxCommentRunes {
			return fmt.Errorf("コメントは%d文字以内で入力してください", common.MaxCommentRunes)
		}
		req.Comment = &comment
	}
	return nil
}

// reviewCreateHandler はレビュー投稿 API。投稿とビジネス集計の再計算を同期で行い、
// 投稿者は自分の変更が反映された集計値を必ず受け取る。
func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		defer r.Body.Close()

		var req createReviewRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
			})
			return
		}
		if err := req.validate(); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := h.reviewCommands.Create(ctx, publicapp.CreateReviewCommand{
			BusinessID: req.BusinessID,
			UserID:     user.ID,
			Rating:     req.Rating,
			Comment:    req.Comment,
		})
		if err != nil {
			h.writeMutationError(w, "レビューの投稿に失敗しました", err)
			return
		}

		review := buildReviewResponse(result.Review)
		common.WriteJSON(h.logger, w, http.StatusCreated, reviewMutationResponse{
			Status:   "created",
			Review:   &review,
			Business: buildBusinessAggregateResponse(result.Business),
		})
	}
}

// reviewUpdateHandler は投稿者本人のみが自分のレビューを編集できる。
func (h *Handler) reviewUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "レビューIDの形式が不正です"})
			return
		}

		defer r.Body.Close()

		var req updateReviewRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
			})
			return
		}
		if err := req.validate(); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := h.reviewCommands.Update(ctx, idParam, user.ID, publicapp.UpdateReviewCommand{
			Rating:  req.Rating,
			Comment: req.Comment,
		})
		if err != nil {
			h.writeMutationError(w, "レビューの更新に失敗しました", err)
			return
		}

		review := buildReviewResponse(result.Review)
		common.WriteJSON(h.logger, w, http.StatusOK, reviewMutationResponse{
			Status:   "updated",
			Review:   &review,
			Business: buildBusinessAggregateResponse(result.Business),
		})
	}
}

// reviewDeleteHandler は投稿者本人のみが自分のレビューを削除できる。
func (h *Handler) reviewDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "レビューIDの形式が不正です"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := h.reviewCommands.Delete(ctx, idParam, user.ID)
		if err != nil {
			h.writeMutationError(w, "レビューの削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reviewMutationResponse{
			Status:   "deleted",
			Business: buildBusinessAggregateResponse(summary),
		})
	}
}

// writeMutationError はアプリケーション層のエラー分類を HTTP ステータスへ写像する。
func (h *Handler) writeMutationError(w http.ResponseWriter, fallback string, err error) {
	switch {
	case errors.Is(err, publicapp.ErrInvalidQuery):
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "入力値が不正です"})
	case errors.Is(err, publicapp.ErrNotFound):
		common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "対象が見つかりません"})
	case errors.Is(err, publicapp.ErrForbidden):
		common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "この操作を行う権限がありません"})
	default:
		h.logger.Printf("review mutation failed: %v", err)
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": fallback})
	}
}
