package main
import (
	"os"
	"fmt"
	"strings"
	"path/filepath"

	"pixelveil/util"
	"pixelveil/local"
	"pixelveil/config"
	"pixelveil/stegano"
)

const (
	AppFolder = ".pixelveil"
	ConfigFilename = "config.yaml"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	cfg, err := loadOrCreateConfig()
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	logger := util.NewLogger( &cfg.Logger )

	switch os.Args[1] {
	case "hide":
		if len( os.Args ) < 5 {
			fatal("Usage: pixelveil hide <carrier> <output> <message...>", nil)
		}
		message := strings.Join( os.Args[4:], " " )
		if os.Args[4] == "-f" {
			if len( os.Args ) < 6 {
				fatal("Usage: pixelveil hide <carrier> <output> -f <message file>", nil)
			}
			raw, err := os.ReadFile( os.Args[5] )
			if err != nil {
				fatal("Failed to read the message file:", err)
			}
			message = string( raw )
		}
		if cfg.Stegano.NormalizeText {
			message = util.FixUnicode( message )
		}
		if err = hide( os.Args[2], os.Args[3], []byte(message) ); err != nil {
			logger.LogError( err )
			fatal("Failed to hide the message:", err)
		}
		fmt.Println("Saved to", os.Args[3])

	case "reveal":
		if len( os.Args ) < 3 {
			fatal("Usage: pixelveil reveal <carrier>", nil)
		}
		message, err := reveal( os.Args[2] )
		if err != nil {
			logger.LogError( err )
			fatal("Failed to reveal a message:", err)
		}
		fmt.Println( string(message) )

	case "capacity":
		if len( os.Args ) < 3 {
			fatal("Usage: pixelveil capacity <carrier>", nil)
		}
		decoy, err := os.ReadFile( os.Args[2] )
		if err != nil {
			fatal("Failed to read the carrier file:", err)
		}
		capacity, err := stegano.Capacity( decoy )
		if err != nil {
			fatal("Failed to measure capacity:", err)
		}
		fmt.Println( capacity, "bytes" )

	case "serve":
		if err = local.RunApiServer( cfg, logger ); err != nil {
			fatal("Server stopped:", err)
		}

	default:
		help()
	}
}

func hide( carrierPath, outputPath string, message []byte ) error {
	decoy, err := os.ReadFile( carrierPath )
	if err != nil {
		return err
	}
	hidden, err := stegano.Hide( decoy, message )
	if err != nil {
		return err
	}
	return os.WriteFile( outputPath, hidden, 0660 )
}

func reveal( carrierPath string ) ([]byte, error) {
	decoy, err := os.ReadFile( carrierPath )
	if err != nil {
		return nil, err
	}
	return stegano.Reveal( decoy )
}

func loadOrCreateConfig() (*config.Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	folder := filepath.Join( home, AppFolder )
	if _, err = os.Stat( folder ); err != nil {
		if err = os.Mkdir( folder, 0770 ); err != nil {
			return nil, err
		}
	}
	configFile := filepath.Join( folder, ConfigFilename )
	if _, err = os.Stat( configFile ); err != nil {
		cfg := config.DefaultConfig()
		if err = config.SaveConfig( configFile, cfg ); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.LoadConfig( configFile )
}

func help() {
	fmt.Println(`pixelveil - hide text inside images (and a few audio formats)

Usage:
  pixelveil hide <carrier> <output> <message...>   hide a message
  pixelveil hide <carrier> <output> -f <file>      hide a file's contents
  pixelveil reveal <carrier>                       print the hidden message
  pixelveil capacity <carrier>                     payload bytes that fit
  pixelveil serve                                  run the local web API

Supported carriers: png, bmp, gif, jpeg, flac, mp3.
Output must be saved losslessly; re-compressing a stego file destroys
the payload.`)
}

func fatal( msg string, err error ) {
	if err != nil {
		fmt.Fprintln( os.Stderr, msg, err )
	} else {
		fmt.Fprintln( os.Stderr, msg )
	}
	os.Exit( 1 )
}
