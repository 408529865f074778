package main

import (
	"flag"
	"log"
	"runtime"

	"TerraVox/cliente/internal/app"
	"TerraVox/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	serverURL := flag.String("server", "", "URL do Servidor TerraVox (ex: ws://localhost:8080/ws; vazio = terreno local)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	seed := flag.Int64("seed", 0, "Seed do terreno local (0 = usar config)")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║          TerraVox v0.1.0             ║")
	log.Println("║   Visualizador de terreno volumétrico║")
	log.Println("╚══════════════════════════════════════╝")

	cfg := config.Load()

	// Flags de linha de comando sobrescrevem o config salvo
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	application := app.New(cfg)
	application.Run()
}
