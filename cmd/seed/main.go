// Command seed はファクトリを使って開発用データベースにサンプルデータを投入します。
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"todo-items-api/internal/database"
	"todo-items-api/internal/factory"
	"todo-items-api/internal/repositories"
)

func main() {
	users := flag.Int("users", 3, "Number of users to create")
	todosPerUser := flag.Int("todos", 4, "Number of todos per user")
	itemsPerTodo := flag.Int("items", 5, "Number of items per todo")
	seed := flag.Int64("seed", 0, "Random seed (0 = random)")
	reset := flag.Bool("reset", false, "Truncate all tables before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}

	db := database.InitDB()
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	if *reset {
		if err := database.Truncate(db); err != nil {
			log.Fatalf("Fatal: %v", err)
		}
	}

	store := factory.Store{
		Users: repositories.NewUserRepository(db),
		Todos: repositories.NewTodoRepository(db),
		Items: repositories.NewItemRepository(db),
	}
	f := factory.New(*seed)

	var todoCount, itemCount int
	for i := 0; i < *users; i++ {
		u, err := f.CreateUser(store)
		if err != nil {
			log.Fatalf("Fatal: %v", err)
		}
		for j := 0; j < *todosPerUser; j++ {
			t, err := f.CreateTodo(store, factory.WithTodoUserID(u.ID))
			if err != nil {
				log.Fatalf("Fatal: %v", err)
			}
			items, err := f.CreateItems(store, *itemsPerTodo, factory.WithItemTodoID(t.ID))
			if err != nil {
				log.Fatalf("Fatal: %v", err)
			}
			todoCount++
			itemCount += len(items)
		}
		log.Printf("Seeded user %s (password: %s)", u.Email, factory.DefaultUserPassword)
	}
	log.Printf("Seeded %d users, %d todos, %d items", *users, todoCount, itemCount)
}
