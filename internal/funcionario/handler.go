// internal/funcionario/handler.go
package funcionario

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/CampoGestor/api-os/internal/utils"
	"github.com/gorilla/mux"
)

type criarFuncionarioRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Cargo    string `json:"cargo"`
}

// Ativo opcional no PUT permite reativar um funcionário arquivado.
type atualizarFuncionarioRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Cargo    string `json:"cargo"`
	Ativo    *bool  `json:"ativo"`
}

// Cadastro são as operações de banco usadas pelo handler sobre Funcionario.
type Cadastro interface {
	Create(f *Funcionario) error
	ListarAtivos() ([]Funcionario, error)
	FindByID(id uint) (*Funcionario, error)
	Update(f *Funcionario) error
	Arquivar(id uint) error
}

// Handler gerencia rotas de funcionários
type Handler struct {
	Repo Cadastro
}

func NewHandler(repo Cadastro) *Handler {
	return &Handler{Repo: repo}
}

// POST /funcionarios — cadastra com senha temporária, devolvida uma única
// vez na resposta
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarFuncionarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Email) == "" {
		http.Error(w, "informe nome e e-mail do funcionário", http.StatusBadRequest)
		return
	}

	senhaTemporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(senhaTemporaria)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	f := Funcionario{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Cargo:    req.Cargo,
		Ativo:    true,
		Senha:    hash,
	}

	if err := h.Repo.Create(&f); err != nil {
		http.Error(w, "erro ao salvar funcionário", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"funcionario":     f,
		"senhaTemporaria": senhaTemporaria,
	})
}

// GET /funcionarios
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	funcionarios, err := h.Repo.ListarAtivos()
	if err != nil {
		http.Error(w, "erro ao listar funcionários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(funcionarios)
}

// GET /funcionarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "funcionário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(f)
}

// PUT /funcionarios/{id} — atualiza dados, cargo e status
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "funcionário não encontrado", http.StatusNotFound)
		return
	}

	var body atualizarFuncionarioRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Nome) == "" || strings.TrimSpace(body.Email) == "" {
		http.Error(w, "informe nome e e-mail do funcionário", http.StatusBadRequest)
		return
	}

	existente.Nome = body.Nome
	existente.Email = body.Email
	existente.Telefone = body.Telefone
	existente.Cargo = body.Cargo
	// Ativo ausente no corpo mantém o status atual.
	if body.Ativo != nil {
		existente.Ativo = *body.Ativo
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar funcionário", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// DELETE /funcionarios/{id} — exclusão lógica
func (h *Handler) Arquivar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.FindByID(uint(id)); err != nil {
		http.Error(w, "funcionário não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Arquivar(uint(id)); err != nil {
		http.Error(w, "erro ao arquivar funcionário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
