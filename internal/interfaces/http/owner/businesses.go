package owner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harunoki/petnavi-services/api/internal/interfaces/http/common"
	ownerapp "github.com/harunoki/petnavi-services/api/internal/owner/application"
)

// businessCreateHandler は認証済みユーザーをオーナーとして新しいリスティングを登録する。
func (h *Handler) businessCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		req, ok := h.decodeUpsertRequest(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		business, err := h.businessService.Create(ctx, user.ID, buildUpsertCommand(req))
		if err != nil {
			h.writeBusinessError(w, "ビジネスの登録に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildBusinessResponse(*business))
	}
}

// businessUpdateHandler はオーナー本人のみが自分のリスティングを更新できる。
func (h *Handler) businessUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		idParam, ok := h.businessIDParam(w, r)
		if !ok {
			return
		}
		req, ok := h.decodeUpsertRequest(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		business, err := h.businessService.Update(ctx, idParam, user.ID, buildUpsertCommand(req))
		if err != nil {
			h.writeBusinessError(w, "ビジネスの更新に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildBusinessResponse(*business))
	}
}

// businessDeleteHandler はリスティングと配下のレビューをまとめて削除する。
func (h *Handler) businessDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		idParam, ok := h.businessIDParam(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.businessService.Delete(ctx, idParam, user.ID); err != nil {
			h.writeBusinessError(w, "ビジネスの削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (h *Handler) businessIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	idParam := strings.TrimSpace(chi.URLParam(r, "id"))
	if idParam == "" {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ビジネスIDが指定されていません"})
		return "", false
	}
	if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ビジネスIDの形式が不正です"})
		return "", false
	}
	return idParam, true
}

func (h *Handler) decodeUpsertRequest(w http.ResponseWriter, r *http.Request) (upsertBusinessRequest, bool) {
	defer r.Body.Close()

	var req upsertBusinessRequest
	decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
		})
		return upsertBusinessRequest{}, false
	}
	return req, true
}

func buildUpsertCommand(req upsertBusinessRequest) ownerapp.UpsertBusinessCommand {
	return ownerapp.UpsertBusinessCommand{
		Name:        req.Name,
		ServiceType: common.CanonicalServiceType(req.ServiceType),
		Address:     req.Address,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		IsOpen:      req.IsOpen,
	}
}

// writeBusinessError はアプリケーション層のエラー分類を HTTP ステータスへ写像する。
func (h *Handler) writeBusinessError(w http.ResponseWriter, fallback string, err error) {
	switch {
	case errors.Is(err, ownerapp.ErrInvalidInput):
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ownerapp.ErrNotFound):
		common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "ビジネスが見つかりません"})
	case errors.Is(err, ownerapp.ErrForbidden):
		common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "この操作を行う権限がありません"})
	default:
		h.logger.Printf("owner business mutation failed: %v", err)
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": fallback})
	}
}
