package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"sekolahku_backend/internals/features/school/finance/spp/model"
)

var SnapClient snap.Client

// Panggil saat bootstrap app (sandbox)
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// Buat Snap token + redirect_url untuk satu tagihan SPP
func GenerateSnapToken(bill model.SppBillModel, studentName, studentEmail string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  bill.SppBillOrderID,
			GrossAmt: bill.SppBillAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: studentName,
			Email: studentEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    bill.SppBillID.String(),
				Name:  "SPP " + bill.SppBillMonth,
				Price: bill.SppBillAmount,
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
