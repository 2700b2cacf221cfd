package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"ecoparques/internal/adapters/remote"
	"ecoparques/internal/adapters/storage/prefs"
	"ecoparques/internal/application/navigator"
	"ecoparques/internal/application/orchestrators"
	"ecoparques/internal/application/projections"
	"ecoparques/internal/application/screens"
	"ecoparques/internal/application/search"
	"ecoparques/internal/application/session"
	"ecoparques/internal/domain/parque"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	dataDir := envOrDefault("ECOPARQUES_DATA_DIR", ".")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}

	// Local preference store with WAL mode and busy timeout
	dbPath := filepath.Join(dataDir, "ecoparques.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open preference store: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("preference store unreachable: %v", err)
	}
	if err := prefs.InitDB(db); err != nil {
		log.Fatalf("failed to init preference store: %v", err)
	}

	// Session artifacts are sealed at rest; the key lives next to the DB
	key, err := prefs.LoadOrCreateKey(filepath.Join(dataDir, "ecoparques.key"))
	if err != nil {
		log.Fatalf("failed to load seal key: %v", err)
	}
	store := prefs.NewSQLiteStore(db)
	artifacts := prefs.NewSessionArtifacts(store, prefs.NewVault(key))

	// Remote backend client
	baseURL := envOrDefault("ECOPARQUES_API_URL", "http://localhost:3000")
	timeoutMS, err := strconv.Atoi(envOrDefault("ECOPARQUES_TIMEOUT_MS", "10000"))
	if err != nil {
		log.Fatalf("invalid ECOPARQUES_TIMEOUT_MS: %v", err)
	}
	client := remote.New(baseURL, time.Duration(timeoutMS)*time.Millisecond)

	// Session manager rehydrates before anything renders
	ctx := context.Background()
	sessions := session.NewManager(session.Deps{Artifacts: artifacts, Tokens: client})
	sessions.Initialize(ctx)

	nav := navigator.New(sessions)

	catalogo := screens.NewCatalogo(screens.CatalogoDeps{
		Parques:    client,
		Eventos:    client,
		Atividades: client,
		Prefs:      store,
	})
	catalogo.Load(ctx)

	login := screens.NewLogin(orchestrators.LoginDeps{Auth: client, Session: sessions})
	usuario := screens.NewUsuario(screens.UsuarioDeps{
		Session: sessions,
		Guard:   nav,
		Auth:    client,
		Parques: client,
	})

	slog.Info("app_started", "version", version, "api_url", baseURL, "state", string(nav.Resolve()))

	runShell(ctx, shellDeps{
		client:   client,
		nav:      nav,
		sessions: sessions,
		catalogo: catalogo,
		login:    login,
		usuario:  usuario,
	})
}

type shellDeps struct {
	client   *remote.Client
	nav      *navigator.Navigator
	sessions *session.Manager
	catalogo *screens.Catalogo
	login    *screens.LoginScreen
	usuario  *screens.UsuarioScreen
}

// runShell is a minimal line-oriented host around the screen layer, enough
// to exercise every flow from a terminal.
func runShell(ctx context.Context, deps shellDeps) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("ecoparques — digite 'ajuda' para os comandos")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "ajuda":
			fmt.Println("comandos: entrar <email> <senha> | sair | parques | parque <id|todos> | eventos | atividades [tipo] | buscar <evento|atividade> <texto> | perfil | fim")
		case "entrar":
			if len(fields) != 3 {
				fmt.Println("uso: entrar <email> <senha>")
				continue
			}
			profile, err := deps.login.Submit(ctx, fields[1], fields[2])
			if err != nil {
				fmt.Println(screens.UserMessage(err))
				continue
			}
			fmt.Printf("bem-vindo, %s (%s)\n", profile.Name, deps.nav.Resolve())
		case "sair":
			deps.usuario.SignOut(ctx)
			fmt.Println("sessão encerrada")
		case "parques":
			for _, p := range deps.catalogo.Parques() {
				fmt.Printf("%s  %s — %s\n", p.ID, p.Nome, p.Localizacao)
			}
		case "parque":
			if len(fields) != 2 {
				fmt.Println("uso: parque <id|todos>")
				continue
			}
			id := fields[1]
			if id == "todos" {
				id = ""
			}
			deps.catalogo.SelectParque(ctx, id)
		case "eventos":
			result, err := deps.catalogo.Eventos(ctx)
			if err != nil {
				fmt.Println(screens.UserMessage(err))
				continue
			}
			for _, e := range result.Items {
				fmt.Printf("%s  %s  %s\n", e.ID, e.Data.Format("02/01/2006"), e.Nome)
			}
			if !result.Complete() {
				fmt.Printf("(%d parque(s) não responderam)\n", len(result.Failures))
			}
		case "atividades":
			tipo := ""
			if len(fields) > 1 {
				tipo = fields[1]
			}
			result, err := deps.catalogo.Atividades(ctx, tipo)
			if err != nil {
				fmt.Println(screens.UserMessage(err))
				continue
			}
			for _, a := range result.Items {
				fmt.Printf("%s  [%s] %s (%d min)\n", a.ID, a.Tipo, a.Nome, a.TempoMin)
			}
			if !result.Complete() {
				fmt.Printf("(%d parque(s) não responderam)\n", len(result.Failures))
			}
		case "buscar":
			if len(fields) < 3 {
				fmt.Println("uso: buscar <evento|atividade> <texto>")
				continue
			}
			runSearch(ctx, deps, orchestrators.Kind(fields[1]), strings.Join(fields[2:], " "))
		case "perfil":
			profile, signed := deps.usuario.Profile()
			if !signed {
				fmt.Println("nenhuma sessão — use 'entrar'")
				continue
			}
			fmt.Printf("%s  %s <%s>  papel=%s\n", deps.usuario.Initials(), profile.Name, profile.Email, profile.Role)
		case "fim":
			return
		default:
			fmt.Println("comando desconhecido — digite 'ajuda'")
		}
	}
}

// runSearch drives the debounced controller synchronously: one query, one
// settled result.
func runSearch(ctx context.Context, deps shellDeps, kind orchestrators.Kind, query string) {
	fetch := func(ctx context.Context, q string) ([]search.Candidate, error) {
		parques := projections.GetParques(ctx, projections.GetParquesDeps{Parques: deps.client})
		ids := parque.IDs(parques)

		var out []search.Candidate
		if kind == orchestrators.KindAtividade {
			result := projections.GetAtividadesTodosParques(ctx, projections.GetAtividadesDeps{Atividades: deps.client}, ids, "")
			for _, a := range result.Items {
				if search.MatchNome(a.Nome, q) {
					out = append(out, search.Candidate{ID: a.ID, Nome: a.Nome, Extra: a.Tipo})
				}
			}
			return out, nil
		}
		result := projections.GetEventosTodosParques(ctx, projections.GetEventosDeps{Eventos: deps.client}, ids)
		for _, e := range result.Items {
			if search.MatchNome(e.Nome, q) {
				out = append(out, search.Candidate{ID: e.ID, Nome: e.Nome, Extra: e.Data.Format("02/01/2006")})
			}
		}
		return out, nil
	}

	done := make(chan search.Result, 1)
	ctl := search.NewController(search.Deps{Fetch: fetch, Publish: func(r search.Result) { done <- r }})
	defer ctl.Close()

	ctl.SetQuery(ctx, query)
	select {
	case r := <-done:
		for _, c := range r.Candidates {
			fmt.Printf("%s  %s  %s\n", c.ID, c.Nome, c.Extra)
		}
	case <-time.After(10 * time.Second):
		fmt.Println("a busca não respondeu")
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
