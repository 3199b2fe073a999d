package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Dumps a local transcript database as a table. Keys follow the
// "msg:{room}:{timestamp_padded}:{id}" layout of the transcript store.
func main() {
	dbPath := flag.String("db", "./chat-transcript", "Path to the transcript badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:<room>: narrows to one room)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Room", "At", "From", "Text"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var count int
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var entry struct {
					Room        string `json:"room"`
					DisplayName string `json:"displayName"`
					Text        string `json:"text"`
					SentAt      int64  `json:"sentAt"`
				}
				if err := json.Unmarshal(v, &entry); err != nil {
					// Log and keep scanning instead of aborting the dump
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				table.Append([]string{
					string(item.Key()),
					entry.Room,
					time.Unix(0, entry.SentAt).UTC().Format(time.DateTime),
					entry.DisplayName,
					entry.Text,
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
	fmt.Printf("\n%d entries under prefix %q\n", count, *prefix)
}

func openDB(path string) (*badger.DB, error) {
	options := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR)
	return badger.Open(options)
}
