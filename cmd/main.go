package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/CampoGestor/api-os/internal/assistente"
	"github.com/CampoGestor/api-os/internal/cache"
	"github.com/CampoGestor/api-os/internal/catalogo"
	"github.com/CampoGestor/api-os/internal/custoadicional"
	"github.com/CampoGestor/api-os/internal/estoque"
	"github.com/CampoGestor/api-os/internal/funcionario"
	"github.com/CampoGestor/api-os/internal/itemordem"
	"github.com/CampoGestor/api-os/internal/materialordem"
	"github.com/CampoGestor/api-os/internal/monitorestoque"
	"github.com/CampoGestor/api-os/internal/ordemservico"
	"github.com/CampoGestor/api-os/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&catalogo.Servico{},
		&ordemservico.OrdemServico{},
		&itemordem.ItemOrdem{},
		&estoque.Material{},
		&materialordem.MaterialOrdem{},
		&custoadicional.CustoAdicional{},
		&funcionario.Funcionario{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Repositórios
	catalogoRepo := catalogo.NewRepository(database)
	ordemRepo := ordemservico.NewRepository(database)
	itemRepo := itemordem.NewRepository(database)
	estoqueRepo := estoque.NewRepository(database)
	materialRepo := materialordem.NewRepository(database)
	custoRepo := custoadicional.NewRepository(database)
	funcionarioRepo := funcionario.NewRepository(database)

	// Serviços
	totaisService := ordemservico.NewTotaisService(itemRepo, materialRepo, custoRepo)
	materialService := materialordem.NewService(database, materialRepo, estoqueRepo)

	monitor := monitorestoque.New(estoqueRepo, notificadorEstoque(), intervaloMonitor())
	monitor.Iniciar()

	sessoes := cache.New(30*time.Minute, 5*time.Minute)
	consultas := assistente.NewConsultas(estoqueRepo, ordemRepo, totaisService, funcionarioRepo)
	assistenteService := assistente.NewServico(consultas, sessoes)

	// Handlers
	catalogoHandler := catalogo.NewHandler(catalogoRepo)
	ordemHandler := ordemservico.NewHandler(ordemRepo, totaisService)
	itemHandler := itemordem.NewHandler(itemRepo, catalogoRepo)
	estoqueHandler := estoque.NewHandler(estoqueRepo)
	materialHandler := materialordem.NewHandler(materialService, materialRepo, monitor)
	custoHandler := custoadicional.NewHandler(custoRepo)
	funcionarioHandler := funcionario.NewHandler(funcionarioRepo)
	monitorHandler := monitorestoque.NewHandler(monitor)
	assistenteHandler := assistente.NewHandler(assistenteService)

	// Router
	r := mux.NewRouter()

	// Rotas do catálogo de serviços
	r.HandleFunc("/servicos", catalogoHandler.Criar).Methods("POST")
	r.HandleFunc("/servicos", catalogoHandler.Listar).Methods("GET")
	r.HandleFunc("/servicos/{id}", catalogoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/servicos/{id}", catalogoHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/servicos/{id}", catalogoHandler.Deletar).Methods("DELETE")

	// Rotas de ordens de serviço
	r.HandleFunc("/ordens", ordemHandler.Criar).Methods("POST")
	r.HandleFunc("/ordens", ordemHandler.Listar).Methods("GET")
	r.HandleFunc("/ordens/{id}", ordemHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/ordens/{id}", ordemHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/ordens/{id}", ordemHandler.Deletar).Methods("DELETE")
	r.HandleFunc("/ordens/{id}/totais", ordemHandler.BuscarTotais).Methods("GET")

	// Rotas de itens da ordem
	r.HandleFunc("/ordens/{id}/itens", itemHandler.Criar).Methods("POST")
	r.HandleFunc("/ordens/{id}/itens", itemHandler.Listar).Methods("GET")
	r.HandleFunc("/ordens/{id}/itens/{iid}", itemHandler.Deletar).Methods("DELETE")

	// Rotas de materiais aplicados na ordem
	r.HandleFunc("/ordens/{id}/materiais", materialHandler.Criar).Methods("POST")
	r.HandleFunc("/ordens/{id}/materiais", materialHandler.Listar).Methods("GET")
	r.HandleFunc("/ordens/{id}/materiais/{mid}", materialHandler.Deletar).Methods("DELETE")
	r.HandleFunc("/materiais/{id}/selecao", materialHandler.SelecionarDoEstoque).Methods("GET")

	// Rotas de custos adicionais
	r.HandleFunc("/ordens/{id}/custos", custoHandler.Criar).Methods("POST")
	r.HandleFunc("/ordens/{id}/custos", custoHandler.Listar).Methods("GET")
	r.HandleFunc("/ordens/{id}/custos/resumo", custoHandler.Resumo).Methods("GET")
	r.HandleFunc("/ordens/{id}/custos/{cid}", custoHandler.Deletar).Methods("DELETE")

	// Rotas de estoque
	r.HandleFunc("/materiais", estoqueHandler.Criar).Methods("POST")
	r.HandleFunc("/materiais", estoqueHandler.Listar).Methods("GET")
	r.HandleFunc("/materiais/{id}", estoqueHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/materiais/{id}", estoqueHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/materiais/{id}", estoqueHandler.Arquivar).Methods("DELETE")
	r.HandleFunc("/estoque/alerta", monitorHandler.BuscarAlerta).Methods("GET")

	// Rotas de funcionários
	r.HandleFunc("/funcionarios", funcionarioHandler.Criar).Methods("POST")
	r.HandleFunc("/funcionarios", funcionarioHandler.Listar).Methods("GET")
	r.HandleFunc("/funcionarios/{id}", funcionarioHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/funcionarios/{id}", funcionarioHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/funcionarios/{id}", funcionarioHandler.Arquivar).Methods("DELETE")

	// Rota do assistente
	r.HandleFunc("/assistente/consulta", assistenteHandler.Consultar).Methods("POST")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Encerra o monitor e o cache de sessões junto com o processo
	sinais := make(chan os.Signal, 1)
	signal.Notify(sinais, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sinais
		monitor.Parar()
		sessoes.Parar()
		os.Exit(0)
	}()

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, corsHandler.Handler(r)))
}

// intervaloMonitor lê o intervalo da varredura de estoque em segundos.
func intervaloMonitor() time.Duration {
	segundos, err := strconv.Atoi(os.Getenv("ESTOQUE_INTERVALO_SEGUNDOS"))
	if err != nil || segundos <= 0 {
		segundos = 30
	}
	return time.Duration(segundos) * time.Second
}

// notificadorEstoque escolhe o destino do alerta: webhook configurado ou log.
func notificadorEstoque() monitorestoque.Notificador {
	if url := os.Getenv("ESTOQUE_WEBHOOK_URL"); url != "" {
		return &monitorestoque.WebhookNotificador{URL: url}
	}
	return monitorestoque.LogNotificador{}
}
