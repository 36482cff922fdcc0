// Command initdata prints Mini App init data signed with a bot token, for
// exercising the login endpoint without a Telegram client.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Alexs779/bot-flow-vercel/internal/infrastructure/telegram"
)

func main() {
	botToken := flag.String("token", os.Getenv("BOT_TOKEN"), "bot token used to sign")
	user := flag.String("user", `{"id":99,"first_name":"Jamie","username":"jamie"}`, "user JSON")
	authDate := flag.Int64("auth-date", 0, "auth_date unix seconds (default now)")
	queryID := flag.String("query-id", "", "optional query_id")
	flag.Parse()

	if *botToken == "" {
		fmt.Fprintln(os.Stderr, "initdata: -token or BOT_TOKEN is required")
		os.Exit(2)
	}
	if *authDate == 0 {
		*authDate = time.Now().Unix()
	}

	fields := map[string]string{
		"auth_date": strconv.FormatInt(*authDate, 10),
		"user":      *user,
	}
	if *queryID != "" {
		fields["query_id"] = *queryID
	}
	fmt.Println(telegram.SignInitData(*botToken, fields))
}
