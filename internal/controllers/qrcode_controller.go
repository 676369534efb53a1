package controllers

import (
	"fmt"
	"net/http"

	"mesto-be/internal/models"
	"mesto-be/internal/service"
	"mesto-be/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// QRCodeSize is the edge length of generated images in pixels.
const QRCodeSize = 256

type QRCodeController struct {
	cardService service.CardService
}

func NewQRCodeController(cardService service.CardService) *QRCodeController {
	return &QRCodeController{
		cardService: cardService,
	}
}

// GenerateQRCode handles GET /cards/:id/qrcode - encodes the card's image link
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	var param models.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.Error(validation.FromValidator(err))
		return
	}

	card, err := qc.cardService.Get(c.Request.Context(), param.ID)
	if err != nil {
		c.Error(err)
		return
	}

	qrCode, err := qrcode.New(card.Link, qrcode.Medium)
	if err != nil {
		c.Error(fmt.Errorf("encode qr code: %w", err))
		return
	}

	pngData, err := qrCode.PNG(QRCodeSize)
	if err != nil {
		c.Error(fmt.Errorf("render qr code: %w", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=card-%s.png", card.ID))
	c.Data(http.StatusOK, "image/png", pngData)
}
