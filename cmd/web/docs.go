package main

// @title Property Browser
// @version 1.0
// @description Server-rendered property listing with likes, backed by the property API

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:3000
// @BasePath /

// @tag.name Selector
// @tag.description Identity selection endpoints

// @tag.name Properties
// @tag.description Property listing and like endpoints
