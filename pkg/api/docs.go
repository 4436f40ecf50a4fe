// Package api provides the BlockLake status API.
// @title BlockLake API
// @version 1.0
// @description Status API of a BlockLake run: run configuration, streaming progress and chain head.
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/BlockLake
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @basePath /api/v1
// @schemes http https
package api
