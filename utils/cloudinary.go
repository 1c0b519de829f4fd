package utils

import (
	"context"
	"os"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var (
	cldOnce sync.Once
	cld     *cloudinary.Cloudinary
	cldErr  error
)

func cloudinaryClient() (*cloudinary.Cloudinary, error) {
	cldOnce.Do(func() {
		cld, cldErr = cloudinary.NewFromParams(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"))
	})
	return cld, cldErr
}

func uploadImage(file interface{}, publicID, folder, transformation string) (string, error) {
	client, err := cloudinaryClient()
	if err != nil {
		return "", err
	}

	resp, err := client.Upload.Upload(context.Background(), file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		Transformation: transformation,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// UploadProductImage pushes a catalog photo to Cloudinary and returns its
// secure URL. Images are cropped to the card format the storefront displays.
func UploadProductImage(file interface{}, publicID string) (string, error) {
	return uploadImage(file, publicID, "produits", "c_fill,w_600,h_400")
}

// UploadProfilePicture stores a customer avatar as a small square thumbnail.
func UploadProfilePicture(file interface{}, publicID string) (string, error) {
	return uploadImage(file, publicID, "avatars", "c_thumb,w_200,h_200")
}
