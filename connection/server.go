package connection

import (
	"log"

	"tasktracker/controller/attachments"
	"tasktracker/controller/task"
	"tasktracker/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every endpoint onto a fresh engine. Split out from
// StartServer so tests can mount the full API on an httptest server.
func SetupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middleware.RequestID())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	task.TaskController(router, db)
	task.CreateTaskController(router, db)
	task.UpdateTaskController(router, db)
	task.DeleteTaskController(router, db)

	attachments.AttachmentsController(router, db)

	return router
}

func StartServer() {
	db, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	router := SetupRouter(db)
	if err := router.Run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
