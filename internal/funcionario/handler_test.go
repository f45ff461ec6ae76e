package funcionario

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCadastro struct {
	mock.Mock
}

func (m *MockCadastro) Create(f *Funcionario) error {
	args := m.Called(f)
	return args.Error(0)
}

func (m *MockCadastro) ListarAtivos() ([]Funcionario, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Funcionario), args.Error(1)
}

func (m *MockCadastro) FindByID(id uint) (*Funcionario, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Funcionario), args.Error(1)
}

func (m *MockCadastro) Update(f *Funcionario) error {
	args := m.Called(f)
	return args.Error(0)
}

func (m *MockCadastro) Arquivar(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func requisicaoAtualizar(t *testing.T, id string, corpo atualizarFuncionarioRequest) *http.Request {
	t.Helper()
	b, err := json.Marshal(corpo)
	assert.NoError(t, err)
	r := httptest.NewRequest(http.MethodPut, "/funcionarios/"+id, bytes.NewReader(b))
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestAtualizar_ReativaFuncionarioArquivado(t *testing.T) {
	repo := new(MockCadastro)
	repo.On("FindByID", uint(7)).Return(&Funcionario{
		ID: 7, Nome: "Ana Souza", Email: "ana@campo.com", Ativo: false,
	}, nil)
	repo.On("Update", mock.MatchedBy(func(f *Funcionario) bool { return f.Ativo })).Return(nil)

	ativo := true
	h := NewHandler(repo)
	rec := httptest.NewRecorder()
	h.Atualizar(rec, requisicaoAtualizar(t, "7", atualizarFuncionarioRequest{
		Nome: "Ana Souza", Email: "ana@campo.com", Ativo: &ativo,
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestAtualizar_SemAtivoMantemStatus(t *testing.T) {
	repo := new(MockCadastro)
	repo.On("FindByID", uint(7)).Return(&Funcionario{
		ID: 7, Nome: "Ana Souza", Email: "ana@campo.com", Ativo: false,
	}, nil)
	repo.On("Update", mock.MatchedBy(func(f *Funcionario) bool { return !f.Ativo })).Return(nil)

	h := NewHandler(repo)
	rec := httptest.NewRecorder()
	h.Atualizar(rec, requisicaoAtualizar(t, "7", atualizarFuncionarioRequest{
		Nome: "Ana Souza", Email: "ana@campo.com",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}
