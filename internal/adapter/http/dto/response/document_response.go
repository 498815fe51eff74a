package response

import "joinerypro/internal/domain/entities"

// QuoteResponse adds the display VAT figures to a stored quote.
type QuoteResponse struct {
	entities.Quote
	VATRate      float64 `json:"vatRate"`
	VATAmount    float64 `json:"vatAmount"`
	TotalWithVAT float64 `json:"totalWithVat"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		Quote:        q,
		VATRate:      entities.DisplayVATRate,
		VATAmount:    q.VATAmount(),
		TotalWithVAT: q.TotalWithVAT(),
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

type InvoiceResponse struct {
	entities.Invoice
	VATRate      float64 `json:"vatRate"`
	VATAmount    float64 `json:"vatAmount"`
	TotalWithVAT float64 `json:"totalWithVat"`
	Balance      float64 `json:"balance"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		Invoice:      i,
		VATRate:      entities.DisplayVATRate,
		VATAmount:    i.VATAmount(),
		TotalWithVAT: i.TotalWithVAT(),
		Balance:      i.TotalAmount - i.PaidAmount,
	}
}

func FromInvoices(is []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(is))
	for _, i := range is {
		out = append(out, FromInvoice(i))
	}
	return out
}

type DocumentIDResponse struct {
	ID string `json:"id"`
}
