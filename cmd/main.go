package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/RotaNorte/api-cargas/internal/auth"
	"github.com/RotaNorte/api-cargas/internal/carga"
	"github.com/RotaNorte/api-cargas/internal/cliente"
	"github.com/RotaNorte/api-cargas/internal/liquidacao"
	"github.com/RotaNorte/api-cargas/internal/motorista"
	"github.com/RotaNorte/api-cargas/internal/movimentacao"
	"github.com/RotaNorte/api-cargas/internal/parceiro"
	"github.com/RotaNorte/api-cargas/internal/reversao"
	"github.com/RotaNorte/api-cargas/internal/trajeto"
	"github.com/RotaNorte/api-cargas/internal/usuario"
	"github.com/RotaNorte/api-cargas/internal/utils/db"
	"github.com/RotaNorte/api-cargas/internal/veiculo"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// .env é opcional (em produção as variáveis vêm do ambiente)
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Erro ao criar logger:", err)
	}
	defer logger.Sync()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&cliente.Cliente{},
		&parceiro.Parceiro{},
		&motorista.Motorista{},
		&veiculo.Veiculo{},
		&carga.Carga{},
		&trajeto.Trajeto{},
		&movimentacao.MovimentacaoFinanceira{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	clienteHandler := cliente.NewHandler(database)
	parceiroHandler := parceiro.NewHandler(database)
	motoristaHandler := motorista.NewHandler(database)
	veiculoHandler := veiculo.NewHandler(database)
	cargaHandler := carga.NewHandler(database)
	trajetoHandler := trajeto.NewHandler(database)
	movimentacaoHandler := movimentacao.NewHandler(movimentacao.NewRepository(database))

	registro := reversao.NovoRegistro(logger)
	reversaoHandler := reversao.NewHandler(registro)
	liquidacaoHandler := liquidacao.NewHandler(database, registro, logger)

	// Router
	r := mux.NewRouter()

	// Rota pública de login
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de usuários
	api.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.Criar))).Methods("POST")
	api.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.Listar))).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/usuarios/{id}/senha", usuarioHandler.AtualizarSenha).Methods("PATCH")
	api.Handle("/usuarios/{id}", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.Deletar))).Methods("DELETE")

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Rotas de parceiros
	api.HandleFunc("/parceiros", parceiroHandler.Criar).Methods("POST")
	api.HandleFunc("/parceiros", parceiroHandler.Listar).Methods("GET")
	api.HandleFunc("/parceiros/{id}", parceiroHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/parceiros/{id}", parceiroHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/parceiros/{id}", parceiroHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/parceiros/{id}/motoristas", motoristaHandler.Listar).Methods("GET")

	// Rotas de motoristas
	api.HandleFunc("/motoristas", motoristaHandler.Criar).Methods("POST")
	api.HandleFunc("/motoristas", motoristaHandler.Listar).Methods("GET")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.Deletar).Methods("DELETE")

	// Rotas de veículos
	api.HandleFunc("/veiculos", veiculoHandler.Criar).Methods("POST")
	api.HandleFunc("/veiculos", veiculoHandler.Listar).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.Deletar).Methods("DELETE")

	// Rotas de cargas
	api.HandleFunc("/cargas", cargaHandler.Criar).Methods("POST")
	api.HandleFunc("/cargas", cargaHandler.Listar).Methods("GET")
	api.HandleFunc("/cargas/{id}", cargaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cargas/{id}", cargaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/cargas/{id}/status", cargaHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/cargas/{id}", cargaHandler.Deletar).Methods("DELETE")

	// Rotas de trajetos
	api.HandleFunc("/cargas/{id}/trajetos", trajetoHandler.Criar).Methods("POST")
	api.HandleFunc("/cargas/{id}/trajetos", trajetoHandler.ListarPorCarga).Methods("GET")
	api.HandleFunc("/cargas/{id}/trajetos/{numero}", trajetoHandler.BuscarPorNumero).Methods("GET")
	api.HandleFunc("/cargas/{id}/trajetos/{numero}", trajetoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/cargas/{id}/trajetos/{numero}", trajetoHandler.Deletar).Methods("DELETE")

	// Rotas de movimentações financeiras
	api.HandleFunc("/movimentacoes", movimentacaoHandler.Criar).Methods("POST")
	api.HandleFunc("/movimentacoes", movimentacaoHandler.Listar).Methods("GET")
	api.HandleFunc("/movimentacoes/{id}", movimentacaoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/movimentacoes/{id}/status", movimentacaoHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/movimentacoes/{id}", movimentacaoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/cargas/{id}/movimentacoes", movimentacaoHandler.ListarPorCarga).Methods("GET")

	// Rotas de liquidação de frete
	api.HandleFunc("/cargas/{id}/liquidacoes", liquidacaoHandler.Liquidar).Methods("POST")
	api.HandleFunc("/cargas/{id}/trajetos/{numero}/situacao", liquidacaoHandler.Situacao).Methods("GET")

	// Rotas de desfazer
	api.HandleFunc("/acoes/ultima", reversaoHandler.Ultima).Methods("GET")
	api.HandleFunc("/acoes/desfazer", reversaoHandler.DesfazerUltima).Methods("POST")

	handler := cors.AllowAll().Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
