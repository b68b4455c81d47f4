package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	sppModel "sekolahku_backend/internals/features/school/finance/spp/model"
)

// HandleSppStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandleSppStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var bill sppModel.SppBillModel
	if err := db.Where("spp_bill_order_id = ?", orderID).First(&bill).Error; err != nil {
		log.Println("[ERROR] Tagihan SPP tidak ditemukan:", err)
		return fmt.Errorf("spp bill with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		bill.SppBillStatus = "paid"
		bill.SppBillPaidAt = &now

	case "expire":
		bill.SppBillStatus = "expired"
	case "cancel":
		bill.SppBillStatus = "canceled"
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if err := db.Save(&bill).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status tagihan:", err)
		return err
	}

	return nil
}
