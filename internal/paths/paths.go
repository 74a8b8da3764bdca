package paths

import (
	"os"
	"path/filepath"
)

// AppName é o nome usado nos diretórios de configuração e estado.
const AppName = "toolprobe"

// Resolver centraliza caminhos padrão do toolprobe.
// Ele calcula diretórios base a partir de HOME e das variáveis XDG.
type Resolver struct {
	homeDir string
	getenv  func(string) string
}

// NewResolver cria um Resolver usando o HOME do usuário atual.
func NewResolver() *Resolver {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}
	return &Resolver{
		homeDir: homeDir,
		getenv:  os.Getenv,
	}
}

// NewResolverWithHome cria um Resolver com homeDir explícito (útil para testes).
// As variáveis XDG são ignoradas.
func NewResolverWithHome(homeDir string) *Resolver {
	return &Resolver{
		homeDir: homeDir,
		getenv:  func(string) string { return "" },
	}
}

// HomeDir retorna o diretório HOME resolvido.
func (r *Resolver) HomeDir() string {
	return r.homeDir
}

// GetConfigDir retorna $XDG_CONFIG_HOME/toolprobe ou ~/.config/toolprobe.
func (r *Resolver) GetConfigDir() string {
	if base := r.getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, AppName)
	}
	return filepath.Join(r.homeDir, ".config", AppName)
}

// GetStateDir retorna $XDG_STATE_HOME/toolprobe ou ~/.local/state/toolprobe.
func (r *Resolver) GetStateDir() string {
	if base := r.getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, AppName)
	}
	return filepath.Join(r.homeDir, ".local", "state", AppName)
}

// GetLogFile retorna o arquivo de log padrão dentro do diretório de estado.
func (r *Resolver) GetLogFile() string {
	return filepath.Join(r.GetStateDir(), AppName+".log")
}
