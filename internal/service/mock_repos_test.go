package service

import (
	"context"
	"net"

	"gorm.io/gorm"

	"github.com/luizndev/unime-pdr/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[string]*model.User // key: user_id
	byMail map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[string]*model.User),
		byMail: make(map[string]*model.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := m.byMail[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	m.byMail[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.byMail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock InformaticaRepository ──

type mockInformaticaRepo struct {
	recs []*model.Informatica
	// when set, Create fails with this error (simulates the unique
	// index firing on a concurrent insert)
	failCreateWith error
}

func newMockInformaticaRepo() *mockInformaticaRepo {
	return &mockInformaticaRepo{}
}

func (m *mockInformaticaRepo) Create(_ context.Context, rec *model.Informatica) error {
	if m.failCreateWith != nil {
		return m.failCreateWith
	}
	for _, r := range m.recs {
		if r.Data == rec.Data && r.Laboratorio == rec.Laboratorio {
			return gorm.ErrDuplicatedKey
		}
	}
	if rec.ID == "" {
		rec.ID = "inf-" + rec.Token
	}
	m.recs = append(m.recs, rec)
	return nil
}

func (m *mockInformaticaRepo) CountByData(_ context.Context, data string) (int64, error) {
	var n int64
	for _, r := range m.recs {
		if r.Data == data {
			n++
		}
	}
	return n, nil
}

func (m *mockInformaticaRepo) GetByDataLaboratorio(_ context.Context, data, laboratorio string) (*model.Informatica, error) {
	for _, r := range m.recs {
		if r.Data == data && r.Laboratorio == laboratorio {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInformaticaRepo) GetByToken(_ context.Context, token string) (*model.Informatica, error) {
	for _, r := range m.recs {
		if r.Token == token {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInformaticaRepo) ListByEmail(_ context.Context, email string) ([]model.Informatica, error) {
	var out []model.Informatica
	for _, r := range m.recs {
		if r.Email == email {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockInformaticaRepo) List(_ context.Context) ([]model.Informatica, error) {
	out := make([]model.Informatica, 0, len(m.recs))
	for _, r := range m.recs {
		out = append(out, *r)
	}
	return out, nil
}

// ── Mock MultidisciplinarRepository ──

type mockMultidisciplinarRepo struct {
	recs []*model.Multidisciplinar
}

func newMockMultidisciplinarRepo() *mockMultidisciplinarRepo {
	return &mockMultidisciplinarRepo{}
}

func (m *mockMultidisciplinarRepo) Create(_ context.Context, rec *model.Multidisciplinar) error {
	if rec.ID == "" {
		rec.ID = "multi-" + rec.Token
	}
	m.recs = append(m.recs, rec)
	return nil
}

func (m *mockMultidisciplinarRepo) GetByToken(_ context.Context, token string) (*model.Multidisciplinar, error) {
	for _, r := range m.recs {
		if r.Token == token {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMultidisciplinarRepo) ListByEmail(_ context.Context, email string) ([]model.Multidisciplinar, error) {
	var out []model.Multidisciplinar
	for _, r := range m.recs {
		if r.Email == email {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockMultidisciplinarRepo) List(_ context.Context) ([]model.Multidisciplinar, error) {
	out := make([]model.Multidisciplinar, 0, len(m.recs))
	for _, r := range m.recs {
		out = append(out, *r)
	}
	return out, nil
}

// ── Mock MensagemRepository ──

type mockMensagemRepo struct {
	msgs []*model.Mensagem
}

func newMockMensagemRepo() *mockMensagemRepo {
	return &mockMensagemRepo{}
}

func (m *mockMensagemRepo) Create(_ context.Context, msg *model.Mensagem) error {
	if msg.ID == "" {
		msg.ID = "msg-" + msg.Username
	}
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *mockMensagemRepo) List(_ context.Context) ([]model.Mensagem, error) {
	out := make([]model.Mensagem, 0, len(m.msgs))
	for i := len(m.msgs) - 1; i >= 0; i-- {
		out = append(out, *m.msgs[i])
	}
	return out, nil
}

// ── Fake MX resolver ──

type fakeMXResolver struct {
	records map[string][]*net.MX
	err     map[string]error
}

func (f *fakeMXResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if err, ok := f.err[name]; ok {
		return nil, err
	}
	return f.records[name], nil
}

// mxFor builds a resolver that answers one MX record for each domain.
func mxFor(domains ...string) *fakeMXResolver {
	r := &fakeMXResolver{records: make(map[string][]*net.MX)}
	for _, d := range domains {
		r.records[d] = []*net.MX{{Host: "mx." + d, Pref: 10}}
	}
	return r
}
