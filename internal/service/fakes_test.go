package service_test

import (
	"context"
	"encoding/json"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/port"
)

// fakeStore is an in-memory port.SettingsStore.
type fakeStore struct {
	cfg domain.APIConfig
	bot domain.BotConfig
}

func newFakeStore(token string) *fakeStore {
	cfg := domain.DefaultAPIConfig()
	cfg.Nitro.APIToken = token
	return &fakeStore{cfg: cfg, bot: domain.DefaultBotConfig()}
}

func (s *fakeStore) LoadAPIConfig(ctx context.Context) (domain.APIConfig, error) {
	return s.cfg, nil
}

func (s *fakeStore) UpdateNitro(ctx context.Context, upd domain.NitroUpdate) (domain.APIConfig, error) {
	if upd.Endpoint != nil {
		s.cfg.Nitro.Endpoint = *upd.Endpoint
	}
	if upd.APIToken != nil {
		s.cfg.Nitro.APIToken = *upd.APIToken
	}
	return s.cfg, nil
}

func (s *fakeStore) UpdateMercadoPago(ctx context.Context, upd domain.MercadoPagoUpdate) (domain.APIConfig, error) {
	if s.cfg.MercadoPago == nil {
		s.cfg.MercadoPago = &domain.MercadoPagoConfig{}
	}
	if upd.AccessToken != nil {
		s.cfg.MercadoPago.AccessToken = *upd.AccessToken
	}
	if upd.PublicKey != nil {
		s.cfg.MercadoPago.PublicKey = *upd.PublicKey
	}
	return s.cfg, nil
}

func (s *fakeStore) LoadBotConfig(ctx context.Context) (domain.BotConfig, error) {
	return s.bot, nil
}

func (s *fakeStore) UpdateBotConfig(ctx context.Context, upd domain.BotConfigUpdate) (domain.BotConfig, error) {
	if upd.Token != nil {
		s.bot.Token = *upd.Token
	}
	if upd.Prefix != nil {
		s.bot.Prefix = *upd.Prefix
	}
	return s.bot, nil
}

// fakeAPI implements port.PaymentsAPI via optional function fields; unset
// methods return zero values.
type fakeAPI struct {
	listProducts      func(ctx context.Context) ([]domain.Product, error)
	getProduct        func(ctx context.Context, hash string) (*domain.Product, error)
	createProduct     func(ctx context.Context, in *domain.ProductInput) (*domain.Product, error)
	updateProduct     func(ctx context.Context, hash string, upd *domain.ProductUpdate) (*domain.Product, error)
	createOffer       func(ctx context.Context, productHash string, in *domain.OfferInput) (*domain.Offer, error)
	updateOffer       func(ctx context.Context, productHash string, upd *domain.OfferUpdate) (*domain.Offer, error)
	listTransactions  func(ctx context.Context) ([]domain.Transaction, error)
	getTransaction    func(ctx context.Context, hash string) (*domain.Transaction, error)
	createPayment     func(ctx context.Context, req *domain.PaymentRequest) (*domain.Transaction, error)
	refundTransaction func(ctx context.Context, hash string, amount *int64) (*domain.Transaction, error)
	listCategories    func(ctx context.Context) ([]domain.Category, error)
	getInstallments   func(ctx context.Context, amount int64) (json.RawMessage, error)
	getCheckout       func(ctx context.Context, hash string) (json.RawMessage, error)
}

func (f *fakeAPI) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if f.listProducts != nil {
		return f.listProducts(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) GetProduct(ctx context.Context, hash string) (*domain.Product, error) {
	if f.getProduct != nil {
		return f.getProduct(ctx, hash)
	}
	return &domain.Product{Hash: hash}, nil
}

func (f *fakeAPI) CreateProduct(ctx context.Context, in *domain.ProductInput) (*domain.Product, error) {
	if f.createProduct != nil {
		return f.createProduct(ctx, in)
	}
	return &domain.Product{Hash: "new", Title: in.Title, Amount: in.Amount}, nil
}

func (f *fakeAPI) UpdateProduct(ctx context.Context, hash string, upd *domain.ProductUpdate) (*domain.Product, error) {
	if f.updateProduct != nil {
		return f.updateProduct(ctx, hash, upd)
	}
	return &domain.Product{Hash: hash}, nil
}

func (f *fakeAPI) CreateOffer(ctx context.Context, productHash string, in *domain.OfferInput) (*domain.Offer, error) {
	if f.createOffer != nil {
		return f.createOffer(ctx, productHash, in)
	}
	return &domain.Offer{Hash: "o1", ProductHash: productHash}, nil
}

func (f *fakeAPI) UpdateOffer(ctx context.Context, productHash string, upd *domain.OfferUpdate) (*domain.Offer, error) {
	if f.updateOffer != nil {
		return f.updateOffer(ctx, productHash, upd)
	}
	return &domain.Offer{Hash: "o1", ProductHash: productHash}, nil
}

func (f *fakeAPI) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if f.listTransactions != nil {
		return f.listTransactions(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) GetTransaction(ctx context.Context, hash string) (*domain.Transaction, error) {
	if f.getTransaction != nil {
		return f.getTransaction(ctx, hash)
	}
	return &domain.Transaction{Hash: hash, Status: domain.StatusPaid}, nil
}

func (f *fakeAPI) CreatePayment(ctx context.Context, req *domain.PaymentRequest) (*domain.Transaction, error) {
	if f.createPayment != nil {
		return f.createPayment(ctx, req)
	}
	return &domain.Transaction{Hash: "t-new", Status: domain.StatusPending}, nil
}

func (f *fakeAPI) RefundTransaction(ctx context.Context, hash string, amount *int64) (*domain.Transaction, error) {
	if f.refundTransaction != nil {
		return f.refundTransaction(ctx, hash, amount)
	}
	return &domain.Transaction{Hash: hash, Status: domain.StatusRefunded}, nil
}

func (f *fakeAPI) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if f.listCategories != nil {
		return f.listCategories(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) GetInstallments(ctx context.Context, amount int64) (json.RawMessage, error) {
	if f.getInstallments != nil {
		return f.getInstallments(ctx, amount)
	}
	return json.RawMessage(`[]`), nil
}

func (f *fakeAPI) GetCheckout(ctx context.Context, hash string) (json.RawMessage, error) {
	if f.getCheckout != nil {
		return f.getCheckout(ctx, hash)
	}
	return json.RawMessage(`{}`), nil
}

func factoryFor(api port.PaymentsAPI) port.ClientFactory {
	return func(endpoint, apiToken string) port.PaymentsAPI { return api }
}

// fakeProber records the credentials it was probed with.
type fakeProber struct {
	endpoint string
	token    string
	result   domain.ConnectionTestResult
}

func (p *fakeProber) Probe(ctx context.Context, endpoint, apiToken string) domain.ConnectionTestResult {
	p.endpoint = endpoint
	p.token = apiToken
	return p.result
}
