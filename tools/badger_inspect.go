package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// "user:" by default; pass -prefix "msg:" to list messages instead
	prefix := flag.String("prefix", "user:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Entity ID", "Created", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			// Secondary indexes hold ids, not records; skip them
			if strings.HasPrefix(rawKey, "user_email:") || strings.HasPrefix(rawKey, "msg_id:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				rowType, entityID, created, detail, err := describe(rawKey, v)
				if err != nil {
					// Log the bad record and keep scanning instead of stopping the whole script
					fmt.Printf("Error unmarshaling key %s: %v\n", rawKey, err)
					return nil
				}

				// First 8 characters of the id are enough to recognize it
				if len(entityID) > 8 {
					entityID = entityID[:8]
				}

				table.Append([]string{rawKey, rowType, entityID, created, detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func describe(key string, val []byte) (rowType, entityID, created, detail string, err error) {
	switch {
	case strings.HasPrefix(key, "user:"):
		var record struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err = json.Unmarshal(val, &record); err != nil {
			return
		}
		return "USER", record.ID, "", fmt.Sprintf("%s <%s>", record.Name, record.Email), nil
	case strings.HasPrefix(key, "msg:"):
		var record struct {
			ID        string `json:"id"`
			Content   string `json:"content"`
			UserID    string `json:"userId"`
			CreatedAt int64  `json:"createdAt"`
		}
		if err = json.Unmarshal(val, &record); err != nil {
			return
		}
		at := time.Unix(0, record.CreatedAt).UTC().Format("2006-01-02 15:04:05")
		return "MESSAGE", record.ID, at, record.Content, nil
	default:
		return "RAW", "", "", string(val), nil
	}
}

func openDB(path string) (*badger.DB, error) {
	options := badger.DefaultOptions(path).
		WithLoggingLevel(badger.ERROR).
		WithBypassLockGuard(true)
	return badger.Open(options)
}
