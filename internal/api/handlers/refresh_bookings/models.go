package refresh_bookings

import (
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings/models"
)

// RefreshResponse HTTP response model при ошибке обновления: ошибка и сохранённые данные
type RefreshResponse struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	View    models.TrackerView `json:"view"`
}
