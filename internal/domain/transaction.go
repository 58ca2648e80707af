package domain

// TransactionStatus is owned by the provider; this service only observes it
// and requests transitions (refund).
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusPaid      TransactionStatus = "paid"
	StatusCancelled TransactionStatus = "cancelled"
	StatusRefunded  TransactionStatus = "refunded"
)

// PaymentMethod enumerates the provider's checkout methods.
type PaymentMethod string

const (
	MethodPix        PaymentMethod = "pix"
	MethodCreditCard PaymentMethod = "credit_card"
	MethodBillet     PaymentMethod = "billet"
)

// Transaction is a purchase attempt or record.
type Transaction struct {
	Hash          string            `json:"hash"`
	Amount        int64             `json:"amount"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	Customer      Customer          `json:"customer"`
	Cart          []CartItem        `json:"cart"`
	Installments  int               `json:"installments,omitempty"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

// Customer is the buyer identity and address, required for payment creation.
type Customer struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Document     string `json:"document"`
	StreetName   string `json:"street_name"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// CartItem is a line item inside a transaction.
type CartItem struct {
	ProductHash   string  `json:"product_hash"`
	Title         string  `json:"title"`
	Cover         *string `json:"cover"`
	Price         int64   `json:"price"`
	Quantity      int     `json:"quantity"`
	OperationType int     `json:"operation_type"`
	Tangible      bool    `json:"tangible"`
}

// Card holds raw card data forwarded to the provider on credit card payments.
type Card struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
	CVV        string `json:"cvv"`
}

// PaymentRequest creates a transaction at the provider.
type PaymentRequest struct {
	Amount        int64         `json:"amount"`
	OfferHash     string        `json:"offer_hash,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Card          *Card         `json:"card,omitempty"`
	Customer      Customer      `json:"customer"`
	Cart          []CartItem    `json:"cart"`
	Installments  int           `json:"installments,omitempty"`
	ExpireInDays  int           `json:"expire_in_days,omitempty"`
	PostbackURL   string        `json:"postback_url,omitempty"`
}
