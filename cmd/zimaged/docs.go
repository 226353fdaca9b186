package main

// General API documentation for swaggo. Regenerate with `swag init`.
//
// @title           zimaged API
// @version         1.0
// @description     HTTP API for text-to-image generation with a pretrained pipeline.
//
// @contact.name   zimaged maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
