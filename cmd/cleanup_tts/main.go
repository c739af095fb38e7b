// Prunes generated audio files. Synthesis output is never deleted by the
// server itself, so the directory grows without bound; run this from cron.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	maxAge := flag.Duration("max-age", 24*time.Hour, "delete audio files older than this")
	dryRun := flag.Bool("dry-run", false, "list files without deleting")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	dir := os.Getenv("TTS_OUTPUT_DIR")
	if dir == "" {
		dir = "static/tts"
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("Failed to read audio directory %s: %v", dir, err)
	}

	cutoff := time.Now().Add(-*maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mp3") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Printf("Skipping %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if *dryRun {
			log.Printf("Would delete %s (age %s)", path, time.Since(info.ModTime()).Round(time.Minute))
			removed++
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Printf("Failed to delete %s: %v", path, err)
			continue
		}
		removed++
	}

	log.Printf("Done. %d file(s) affected in %s", removed, dir)
}
