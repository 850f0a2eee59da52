/* Campus Emissions Tracker (CET) is a component of the DataCan GreenDesk (GD) Platform.
License:

	[PROPER LEGALESE HERE...]

	INTERIM LICENSE DESCRIPTION:
	In spirit, this license:
	1. Allows <Third Party> to use, modify, and / or distributre this software in perpetuity so long as <Third Party> understands:
		a. The software is porvided as is without guarantee of additional support from DataCan in any form.
		b. The software is porvided as is without guarantee of exclusivity.

	2. Prohibits <Third Party> from taking any action which might interfere with DataCan's right to use, modify and / or distributre this software in perpetuity.
*/

package pkg

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"  // go get github.com/golang-jwt/jwt
	"golang.org/x/crypto/bcrypt" // go get golang.org/x/crypto/bcrypt
)

/* https://codevoweb.com/how-to-properly-use-jwt-for-authentication-in-golang/ */

/* CREATE A NEW INSTITUTE ACCOUNT */
func RegisterInstitute(rinp RegisterInstituteInput) (inst Institute, err error) {

	pwHash, err := bcrypt.GenerateFromPassword([]byte(rinp.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("Failed to hash password: %s", err.Error())
		return
	}

	inst = Institute{
		Username:      rinp.Username,
		Email:         strings.ToLower(rinp.Email),
		Password:      string(pwHash),
		InstituteName: rinp.InstituteName,
		Address:       rinp.Address,
		City:          rinp.City,
		State:         rinp.State,
		Role:          ROLE_INSTITUTE,
	}

	res := CET.DB.Create(&inst)
	if res.Error != nil {
		if isDuplicateKeyErr(res.Error) {
			err = fmt.Errorf("An institute with that username or email already exists")
		} else {
			err = fmt.Errorf("Failed to create institute in database: %s", res.Error.Error())
		}
	}

	return
}

/* AUTHENTICATE INSTITUTE CREDENTIALS AND RETURN JWTs */
func LoginInstitute(linp LoginInstituteInput) (ires InstituteResponse, acc, ref string, err error) {

	inst := Institute{}
	/* CHECK USERNAME */
	res := CET.DB.First(&inst, "username = ?", linp.Username)
	if res.Error != nil {
		err = fmt.Errorf("Invalid username or password")
		return
	}

	/* CHECK PASSWORD */
	if err = bcrypt.CompareHashAndPassword([]byte(inst.Password), []byte(linp.Password)); err != nil {
		err = fmt.Errorf("Invalid username or password")
		return
	}

	ires = inst.FilterInstituteRecord()

	if ref, err = CreateJWTRefreshToken(&inst, JWT_REFRESH_EXPIRED_IN); err != nil {
		err = fmt.Errorf("Refresh token generation failed: %s", err.Error())
		return
	}

	if acc, err = CreateJWTAccessToken(&inst); err != nil {
		err = fmt.Errorf("Access token generation failed: %s", err.Error())
	}

	return
}

/* VERIFY A REFRESH TOKEN AND ISSUE A NEW ACCESS TOKEN; NO SERVER-SIDE SESSION STATE */
func RefreshAccessToken(refTok string) (acc string, err error) {

	claims, err := GetClaimsFromTokenString(refTok)
	if err != nil {
		return
	}

	exp := 0
	if fExp, ok := claims["exp"].(float64); ok {
		exp = int(fExp)
	}
	if exp < int(time.Now().Unix()) {
		err = fmt.Errorf("Your refresh token has expired. Please log in.")
		return
	}

	inst, err := GetInstituteByID(fmt.Sprintf("%v", claims["sub"]))
	if err != nil {
		return
	}

	return CreateJWTAccessToken(&inst)
}

/* CREATES A JWT REFRESH TOKEN; USED ON LOGIN ONLY */
func CreateJWTRefreshToken(inst *Institute, dur time.Duration) (ref string, err error) {

	tokByte := jwt.New(jwt.SigningMethodHS256)
	tokClaims := tokByte.Claims.(jwt.MapClaims)
	tokClaims["sub"] = inst.ID // SUBJECT
	tokClaims["exp"] = time.Now().UTC().Add(dur).Unix()

	ref, err = tokByte.SignedString([]byte(JWT_SECRET))
	if err != nil {
		err = fmt.Errorf("Failed to sign refresh token: %s", err.Error())
	}
	return
}

/* CREATES A JWT ACCESS TOKEN; USED ON LOGIN AND SUBSEQUENT REFRESHES */
func CreateJWTAccessToken(inst *Institute) (acc string, err error) {

	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"sub": inst.ID,   // SUBJECT
		"rol": inst.Role, // ROLE
		"exp": now.Add(JWT_EXPIRED_IN).Unix(),
		"iat": now.Unix(), // ISSUED AT
		"nbf": now.Unix(), // NOT VALID BEFORE
	}
	tokenByte := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	acc, err = tokenByte.SignedString([]byte(JWT_SECRET))
	if err != nil {
		err = fmt.Errorf("Failed to sign access token: %s", err.Error())
	}
	return
}

/* RETURNS ALL TOKEN CLAIMS */
func GetClaimsFromTokenString(token string) (claims jwt.MapClaims, err error) {

	/* PARSE TOKEN STRING */
	tokenByte, err := jwt.Parse(token, func(jwtToken *jwt.Token) (interface{}, error) {
		if _, ok := jwtToken.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %s", jwtToken.Header["alg"])
		}
		return []byte(JWT_SECRET), nil
	})
	if err != nil {
		return
	}

	claims, ok := tokenByte.Claims.(jwt.MapClaims)
	if !ok || !tokenByte.Valid {
		err = fmt.Errorf("Invalid token claim.")
		return
	}
	return
}

func GetInstituteByID(instID interface{}) (inst Institute, err error) {

	CET.DB.First(&inst, "id = ?", instID)
	if inst.ID.String() != instID {
		err = fmt.Errorf("The institute belonging to this token no longer exists.")
	}
	return
}

/* POSTGRES AND THE SQLITE TEST DATABASES WORD THEIR UNIQUE-VIOLATION ERRORS DIFFERENTLY */
func isDuplicateKeyErr(err error) bool {
	return strings.Contains(err.Error(), "duplicate key value violates unique") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
